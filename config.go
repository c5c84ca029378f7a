package linesift

// Config holds the validated, immutable inputs for one search invocation.
type Config struct {
	Query           string // The term matched as a contiguous substring
	FilePath        string // The file whose lines are searched
	CaseInsensitive bool   // Fold letter case before comparing
}

// NewConfig builds a Config from the raw process arguments. The expected shape
// is the program name followed by the query and the file path; anything after
// the file path is ignored. The case toggle is resolved by the caller (flag or
// environment) and threaded in explicitly so the matcher stays a pure function
// of its inputs.
//
// Query and path contents are not validated here. An empty query is legal, and
// a nonexistent path only surfaces later, as an I/O error from the file read.
func NewConfig(args []string, caseInsensitive bool) (Config, error) {
	if len(args) < 2 {
		return Config{}, &ConfigError{Reason: "missing query"}
	}

	if len(args) < 3 {
		return Config{}, &ConfigError{Reason: "missing file path"}
	}

	return Config{
		Query:           args[1],
		FilePath:        args[2],
		CaseInsensitive: caseInsensitive,
	}, nil
}
