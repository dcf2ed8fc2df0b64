package session

// State is the host-facing lifecycle of a session.
type State int

const (
	// WaitingForPlane means tracking has not started.
	WaitingForPlane State = iota
	// WaitingForBox means the host is tracking but the play area is not
	// placed yet.
	WaitingForBox
	Running
	// PausedTrackingLost freezes the game until tracking resumes.
	PausedTrackingLost
	Over
)

func (s State) String() string {
	switch s {
	case WaitingForPlane:
		return "waiting_for_plane"
	case WaitingForBox:
		return "waiting_for_box"
	case Running:
		return "running"
	case PausedTrackingLost:
		return "paused_tracking_lost"
	case Over:
		return "over"
	}
	return "unknown"
}

// nextOnTracking returns the state after the host reports tracking.
func (s State) nextOnTracking(tracking bool) State {
	switch {
	case tracking && s == WaitingForPlane:
		return WaitingForBox
	case tracking && s == PausedTrackingLost:
		return Running
	case !tracking && s == Running:
		return PausedTrackingLost
	case !tracking && s == WaitingForBox:
		return WaitingForPlane
	}
	return s
}
