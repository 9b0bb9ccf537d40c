package component

import "fabtrack/internal/pkg/errs"

// StatusFromProgress converts a legacy numeric progress value (0-100) into the
// tri-state representation. Earlier deployments of the workflow tracked a
// per-component percentage; persisted data migrates as 0 -> Raw,
// 1-99 -> SemiFinished, 100 -> Completed.
//
// Values outside [0,100] fail with a ValueIsOutOfRangeError.
func StatusFromProgress(progress int) (Status, error) {
	if progress < 0 || progress > 100 {
		return Unknown, errs.NewValueIsOutOfRangeError("progress", progress, 0, 100)
	}

	switch {
	case progress == 0:
		return Raw, nil
	case progress == 100:
		return Completed, nil
	default:
		return SemiFinished, nil
	}
}
