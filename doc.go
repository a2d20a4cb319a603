// Package tdep lets Go tests declare dependencies on other tests: a subtest
// is skipped when a named prerequisite failed, was skipped, or never ran.
// Skipping rather than failing keeps "could not verify" distinct from
// "verified broken".
//
// # Usage
//
// Build a suite, add named subtests with their dependencies, and run it:
//
//	func TestBox(t *testing.T) {
//		s := tdep.New()
//		s.Add("create", testCreate)
//		s.Add("modify", testModify, tdep.DependsOn("create"))
//		s.Add("delete", testDelete, tdep.DependsOn("modify"))
//		s.Run(t)
//	}
//
// Subtests run in registration order via t.Run. If testCreate fails, the
// "modify" subtest is skipped with the reason "modify depends on create",
// and "delete" is skipped in turn.
//
// Dependencies are resolved against outcomes recorded earlier in the same
// run. A dependency with no recorded outcome is treated as failing unless
// the suite is built with IgnoreUnknown(true). A subtest only records its
// outcome when it declares dependencies, a name override, or a mode, or
// when the suite is built with Automark(true).
//
// Named groups qualify identifiers, so same-named subtests in different
// groups stay distinct:
//
//	s.Group("Small", func(g *tdep.Group) { g.Add("open", testOpenSmall) })
//	s.Group("Large", func(g *tdep.Group) { g.Add("open", testOpenLarge) })
//	s.Add("pack", testPack, tdep.DependsOn("Small::open"))
//
// Inside a test body, Depends performs the same check at runtime:
//
//	func testAudit(t *testing.T) {
//		s.Depends(t, "modify")
//		// ...
//	}
package tdep
