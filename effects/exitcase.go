package effects

// ExitCase describes how the use phase of a bracket concluded. It is a sealed
// union: release functions can type-switch over the three variants and treat
// the switch as exhaustive.
type ExitCase interface {
	sealedExitCase()
}

// ExitCompleted means the use phase returned normally.
type ExitCompleted struct{}

func (ExitCompleted) sealedExitCase() {}

// ExitErrored means the use phase failed with Err.
type ExitErrored struct {
	Err error
}

func (ExitErrored) sealedExitCase() {}

// ExitCancelled means the use phase was interrupted by context cancellation.
type ExitCancelled struct{}

func (ExitCancelled) sealedExitCase() {}
