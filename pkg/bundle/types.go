package bundle

// Arguments holds the configuration for a single bundling run.
type Arguments struct {
	Source string // Directory whose contents are bundled.
	Output string // Destination path for the bundle file.
	Tree   string // Optional destination for a directory tree listing; empty disables it.
}

// FileResult records the outcome of processing one discovered file.
type FileResult struct {
	Path string // Path relative to the source root, slash-separated.
	Err  error  // The reason the file was skipped; nil means it was bundled.
}

// Summary aggregates the per-file outcomes of a completed run.
type Summary struct {
	Bundled int          // Number of records written to the bundle.
	Skipped []FileResult // Files that were discovered but could not be bundled.
}
