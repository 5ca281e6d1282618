package tui

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent once the store has been read.
// Err is set when the stored data could not be read or upgraded.
type MsgTasksLoaded struct {
	Err error
}

func (MsgTasksLoaded) sealed() {}

// MsgToastExpired is sent when a toast's display time has passed.
// Only the toast with the matching ID is dismissed.
type MsgToastExpired struct {
	ID int
}

func (MsgToastExpired) sealed() {}

// Ensure all message types implement Msg.
var (
	_ Msg = MsgTasksLoaded{}
	_ Msg = MsgToastExpired{}
)
