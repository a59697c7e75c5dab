package options

// Tree carries display options between panel states. List states treat it as
// opaque and hand it on unchanged unless a command transforms it.
type Tree struct {
	ShowHidden bool
	ShowRootFS bool
	DirsFirst  bool
}

// Default returns the options used when nothing was configured.
func Default() Tree {
	return Tree{DirsFirst: true}
}
