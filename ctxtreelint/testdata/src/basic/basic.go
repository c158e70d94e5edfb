// Package basic contains test fixtures for the discarded cancel checker.
package basic

import "github.com/NetPo4ki/go-ctxtree/ctxtree"

var pkgRoot = ctxtree.New()

// ===== SHOULD REPORT =====

// [BAD]: package-level declaration blanks both results.
var _, _ = pkgRoot.WithCancel() // want `the cancel function returned by WithCancel is discarded`

// [BAD]: statement position drops both results.
func badDiscardBoth(root *ctxtree.Context) {
	root.WithCancel() // want `the cancel function returned by WithCancel is discarded`
}

// [BAD]: go statement position drops both results.
func badGoDiscard(root *ctxtree.Context) {
	go root.WithCancel() // want `the cancel function returned by WithCancel is discarded`
}

// [BAD]: defer statement position drops both results.
func badDeferDiscard(root *ctxtree.Context) {
	defer root.WithCancel() // want `the cancel function returned by WithCancel is discarded`
}

// [BAD]: child kept, cancel blanked.
func badDiscardCancel(root *ctxtree.Context) *ctxtree.Context {
	child, _ := root.WithCancel() // want `the cancel function returned by WithCancel is discarded`
	return child
}

// [BAD]: both blanked in a plain assignment.
func badBlankBoth(root *ctxtree.Context) {
	_, _ = root.WithCancel() // want `the cancel function returned by WithCancel is discarded`
}

// [BAD]: var declaration blanks the cancel.
func badVarDecl(root *ctxtree.Context) *ctxtree.Context {
	var child, _ = root.WithCancel() // want `the cancel function returned by WithCancel is discarded`
	return child
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: both results retained.
func goodKeepsBoth(root *ctxtree.Context) {
	child, cancel := root.WithCancel()
	defer cancel(nil)
	_ = child
}

// [GOOD]: cancel retained is enough; the child is reachable through it.
func goodKeepsCancelOnly(root *ctxtree.Context) {
	_, cancel := root.WithCancel()
	cancel(nil)
}

// [GOOD]: var declaration keeping both results.
func goodVarDecl(root *ctxtree.Context) {
	var child, cancel = root.WithCancel()
	defer cancel(nil)
	_ = child
}

// [GOOD]: Branch has no cancel function to lose.
func goodBranch(root *ctxtree.Context) {
	root.Branch()
}

// [GOOD]: calls through a method value are not statically dispatched.
func goodMethodValue(root *ctxtree.Context) {
	derive := root.WithCancel
	_, cancel := derive()
	cancel(nil)
}

// [GOOD]: same method name on an unrelated type.
func goodUnrelatedWithCancel() {
	var s settler
	s.WithCancel()
}

type settler struct{}

func (settler) WithCancel() {}
