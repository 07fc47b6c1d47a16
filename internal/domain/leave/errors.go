package leave

import "errors"

var (
	ErrLeaveRequestNotFound       = errors.New("Leave request not found")
	ErrLeaveRequestAlreadyDecided = errors.New("Leave request already decided")
)
