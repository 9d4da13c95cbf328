/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package registry

// Sentinel operation names substituted for special accessors
const (
	GetterName  = "__getter__"
	SetterName  = "__setter__"
	DeleterName = "__deleter__"
)

// rootPathCutset is trimmed from both ends of the cwd-relative document
// path. strings.Trim treats it as a character set, not as a path prefix;
// downstream consumers key on the trimmed paths, so the behavior is
// load-bearing (flagged in impl_test.go).
const rootPathCutset = "../chromium/src/third_party/WebKit"
