package tag

import _ "embed"

//go:embed data/tags.json
var DefaultTagsJSON []byte

// Default loads the embedded default tag set.
func Default() *Set {
	s, err := Load(DefaultTagsJSON)
	if err != nil {
		panic(err)
	}
	return s
}
