//go:build windows

package sysproxy

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const internetSettingsKey = `Software\Microsoft\Windows\CurrentVersion\Internet Settings`

// defaultBypassList keeps loopback and private ranges off the proxy.
const defaultBypassList = "localhost;127.*;10.*;172.16.*;172.17.*;172.18.*;172.19.*;172.20.*;172.21.*;172.22.*;172.23.*;172.24.*;172.25.*;172.26.*;172.27.*;172.28.*;172.29.*;172.30.*;172.31.*;192.168.*;<local>"

const (
	internetOptionSettingsChanged = 39
	internetOptionRefresh         = 37

	wmSettingChange = 0x001A
	smtoAbortIfHung = 0x0002
)

var (
	wininet                 = windows.NewLazySystemDLL("wininet.dll")
	procInternetSetOptionW  = wininet.NewProc("InternetSetOptionW")
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSendMessageTimeoutW = user32.NewProc("SendMessageTimeoutW")
)

type registryBackend struct {
	bypass string
}

// NewSystemBackend returns the WinINet registry backend.
func NewSystemBackend() Backend {
	return &registryBackend{bypass: defaultBypassList}
}

func openSettings(access uint32) (registry.Key, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, internetSettingsKey, access)
	if err != nil {
		if errors.Is(err, windows.ERROR_ACCESS_DENIED) {
			return 0, fmt.Errorf("%w: %w", ErrSettingsAccessDenied, err)
		}
		return 0, fmt.Errorf("%w: open Internet Settings: %w", ErrSettingsWriteFailed, err)
	}
	return k, nil
}

func writeErr(name string, err error) error {
	if errors.Is(err, windows.ERROR_ACCESS_DENIED) {
		return fmt.Errorf("%w: %s: %w", ErrSettingsAccessDenied, name, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrSettingsWriteFailed, name, err)
}

func (r *registryBackend) Enable(endpoint string) error {
	k, err := openSettings(registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()

	if err := k.SetStringValue("ProxyServer", endpoint); err != nil {
		return writeErr("ProxyServer", err)
	}
	if err := k.SetStringValue("ProxyOverride", r.bypass); err != nil {
		return writeErr("ProxyOverride", err)
	}
	if err := k.SetDWordValue("ProxyEnable", 1); err != nil {
		return writeErr("ProxyEnable", err)
	}
	return nil
}

func (r *registryBackend) Disable() error {
	k, err := openSettings(registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()

	if err := k.SetDWordValue("ProxyEnable", 0); err != nil {
		return writeErr("ProxyEnable", err)
	}
	// Either value may be absent.
	_ = k.DeleteValue("ProxyServer")
	_ = k.DeleteValue("AutoConfigURL")
	return nil
}

func (r *registryBackend) Read() (Setting, error) {
	k, err := openSettings(registry.QUERY_VALUE)
	if err != nil {
		return Setting{}, err
	}
	defer k.Close()

	var s Setting
	if v, _, err := k.GetIntegerValue("ProxyEnable"); err == nil {
		s.Enabled = v != 0
	}
	if v, _, err := k.GetStringValue("ProxyServer"); err == nil {
		s.Endpoint = v
	}
	return s, nil
}

// Notify refreshes WinINet and broadcasts WM_SETTINGCHANGE.
func (r *registryBackend) Notify() error {
	var errs []error
	for _, option := range []uintptr{internetOptionSettingsChanged, internetOptionRefresh} {
		ret, _, callErr := procInternetSetOptionW.Call(0, option, 0, 0)
		if ret == 0 {
			errs = append(errs, fmt.Errorf("InternetSetOptionW(%d): %w", option, callErr))
		}
	}

	area, err := windows.UTF16PtrFromString("Internet Settings")
	if err != nil {
		return err
	}
	var result uintptr
	ret, _, callErr := procSendMessageTimeoutW.Call(
		uintptr(windows.HWND(0xffff)), // HWND_BROADCAST
		wmSettingChange,
		0,
		uintptr(unsafe.Pointer(area)),
		smtoAbortIfHung,
		5000,
		uintptr(unsafe.Pointer(&result)),
	)
	if ret == 0 {
		errs = append(errs, fmt.Errorf("SendMessageTimeoutW: %w", callErr))
	}
	return errors.Join(errs...)
}

// Reassert clears ProxyEnable again through PowerShell.
func (r *registryBackend) Reassert() error {
	cmd := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command",
		`Set-ItemProperty -Path 'HKCU:\`+internetSettingsKey+`' -Name ProxyEnable -Value 0`)
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true, CreationFlags: windows.CREATE_NO_WINDOW}
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("powershell: %w (%s)", err, strings.TrimSpace(string(out)))
	}
	return nil
}
