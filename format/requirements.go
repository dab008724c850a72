package format

// Requirements records which runtime fields a template or a consumer
// (callback/filter) needs, so the dispatcher and renderer can skip
// computing fields nobody asked for.
type Requirements struct {
	NeedsCaller  bool
	NeedsThread  bool
	NeedsProcess bool
	NeedsTime    bool
	NeedsLevel   bool
	NeedsMessage bool
	NeedsElapsed bool
}

// Merge ORs two requirement sets together.
func (r Requirements) Merge(other Requirements) Requirements {
	return Requirements{
		NeedsCaller:  r.NeedsCaller || other.NeedsCaller,
		NeedsThread:  r.NeedsThread || other.NeedsThread,
		NeedsProcess: r.NeedsProcess || other.NeedsProcess,
		NeedsTime:    r.NeedsTime || other.NeedsTime,
		NeedsLevel:   r.NeedsLevel || other.NeedsLevel,
		NeedsMessage: r.NeedsMessage || other.NeedsMessage,
		NeedsElapsed: r.NeedsElapsed || other.NeedsElapsed,
	}
}

// All reports every field as needed. Nothing in the module calls it:
// the logger does not merge or cache requirements, and each handler
// renders with its own Config.Requirements whether or not callbacks or
// filters are registered.
func All() Requirements {
	return Requirements{true, true, true, true, true, true, true}
}
