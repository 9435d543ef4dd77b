package tui

import pb "github.com/ech-workers/ech-client/proto"

// tickMsg triggers a status and output refresh.
type tickMsg struct{}

// StatusMsg carries the supervisor status.
type StatusMsg struct {
	Status *pb.Status
}

// OutputMsg carries output lines after the last seen sequence number.
type OutputMsg struct {
	Lines []string
	Seq   uint64
}

// ActionDoneMsg reports the result of a start, stop or toggle.
type ActionDoneMsg struct {
	Text string
}

// OutputClearedMsg signals the captured output was cleared.
type OutputClearedMsg struct{}

// ErrorMsg carries an error to display.
type ErrorMsg struct {
	Err error
}
