package engine

// The flush loop makes every mutation synchronous from the caller's
// perspective. A state update arriving while no flush is in progress is
// applied immediately and the pending queue drained before the call
// returns. An update arriving re-entrantly (from inside a lifecycle
// hook running under an outer mutation) is merged into the instance's
// pending patch and drained by the outermost call. Queued instances are
// deduplicated so one instance re-renders once per drain pass.

// scheduleState routes one SetState through the flush loop.
func (r *Root) scheduleState(inst *instance, patch State, done func()) {
	if r.unmounted || inst.unmounted {
		return
	}

	if r.depth > 0 {
		inst.pendingState = mergeState(inst.pendingState, patch)
		if done != nil {
			inst.pendingDone = append(inst.pendingDone, done)
		}
		r.enqueue(inst)
		return
	}

	r.depth++
	inst.update(inst.props, mergeState(inst.state.Clone(), patch), false)
	r.drain()
	r.depth--

	if done != nil {
		done()
	}
	r.committed()
}

// enqueue adds an instance to the pending queue, once.
func (r *Root) enqueue(inst *instance) {
	if inst.queued {
		return
	}
	inst.queued = true
	r.queue = append(r.queue, inst)
}

// drain applies queued updates until the queue is empty. Updates that
// schedule further updates keep the loop running; everything converges
// before the outermost mutating call returns.
func (r *Root) drain() {
	for len(r.queue) > 0 {
		inst := r.queue[0]
		r.queue = r.queue[1:]
		inst.queued = false

		patch := inst.pendingState
		dones := inst.pendingDone
		inst.pendingState = nil
		inst.pendingDone = nil

		if inst.unmounted {
			continue
		}
		if patch != nil {
			inst.update(inst.props, mergeState(inst.state.Clone(), patch), false)
		}
		for _, done := range dones {
			done()
		}
	}
}
