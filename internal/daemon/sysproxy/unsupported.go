package sysproxy

type unsupportedBackend struct{}

func (unsupportedBackend) Enable(string) error    { return ErrUnsupported }
func (unsupportedBackend) Disable() error         { return nil }
func (unsupportedBackend) Read() (Setting, error) { return Setting{}, nil }
func (unsupportedBackend) Notify() error          { return nil }
func (unsupportedBackend) Reassert() error        { return nil }
