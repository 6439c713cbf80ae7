// control/observers.go
// Author: momentics <momentics@gmail.com>

package control

import "github.com/momentics/splitvec/api"

type multiObserver []api.SplitObserver

// Observers fans every event out to obs in order. Nil entries are skipped.
func Observers(obs ...api.SplitObserver) api.SplitObserver {
	out := make(multiObserver, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			out = append(out, o)
		}
	}
	return out
}

func (m multiObserver) OnSplit(base, reserved int) {
	for _, o := range m {
		o.OnSplit(base, reserved)
	}
}

func (m multiObserver) OnCommit(base, written, reserved int) {
	for _, o := range m {
		o.OnCommit(base, written, reserved)
	}
}

func (m multiObserver) OnCapacityExceeded(base, reserved int) {
	for _, o := range m {
		o.OnCapacityExceeded(base, reserved)
	}
}
