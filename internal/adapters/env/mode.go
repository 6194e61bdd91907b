package env

import (
	"os"
)

const DevVar = "WIKI_DEV"

type Mode int

const (
	ModeProd Mode = iota
	ModeDev
)

func (m Mode) String() string {
	if m == ModeDev {
		return "dev"
	}
	return "prod"
}

func DetectMode() Mode {
	if os.Getenv(DevVar) == "1" {
		return ModeDev
	}
	return ModeProd
}
