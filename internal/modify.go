package internal

// ImportanceNever marks a variable that was never written. The importance
// counter skips it on wraparound.
const ImportanceNever uint32 = 0

// ModifyInfo stamps every variable write with a rank and, for animation
// writes, a weak link to the animation that produced it. A variable accepts a
// write iff its importance is >= the importance of the last accepted write.
type ModifyInfo struct {
	Handle     *WeakHandle
	Importance uint32
}

// IsAnimation reports whether the write originates from a running animation
// callback rather than a direct set.
func (m ModifyInfo) IsAnimation() bool {
	return m.Handle != nil
}

// SameAnimation reports whether both infos were produced by the same live
// animation.
func (m ModifyInfo) SameAnimation(o ModifyInfo) bool {
	return m.Handle.same(o.Handle)
}

// CanModify reports whether a write carrying this info is accepted over the
// last accepted write. Equal ranks are accepted, so a second write within the
// same animation tick still applies.
func (m ModifyInfo) CanModify(last ModifyInfo) bool {
	return m.Importance >= last.Importance
}
