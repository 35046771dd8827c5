package main

import (
	"os"
	"reflect"
	"strings"

	musgen "github.com/mus-format/musgen-go/mus"
	genops "github.com/mus-format/musgen-go/options/generate"
	structops "github.com/mus-format/musgen-go/options/struct"
	typeops "github.com/mus-format/musgen-go/options/type"
	"github.com/poiesic/lingcomp/core"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	// go generate runs from core/; write relative to the module root
	if strings.HasSuffix(cwd, "core") {
		if err := os.Chdir(".."); err != nil {
			panic(err)
		}
	}
	g, err := musgen.NewCodeGenerator(
		genops.WithPkgPath("github.com/poiesic/lingcomp/core"),
	)
	if err != nil {
		panic(err)
	}

	g.AddDefinedType(reflect.TypeFor[core.ID]())

	err = g.AddStruct(reflect.TypeFor[core.FeatureRecord](),
		structops.WithField(), // CharLen
		structops.WithField(), // WordLen
		structops.WithField(), // TokenLen
		structops.WithField(), // Sentiment
		structops.WithField(), // ActionVerbCount
		structops.WithField(), // TemporalRef
		structops.WithField(), // TTR
		structops.WithField(), // ExclamCount
		structops.WithField()) // Readability
	if err != nil {
		panic(err)
	}

	err = g.AddStruct(reflect.TypeFor[core.Chunk](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField())
	if err != nil {
		panic(err)
	}

	// Unix micro timestamps
	err = g.AddStruct(reflect.TypeFor[core.IndexManifest](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(typeops.WithTimeUnit(typeops.Micro)))
	if err != nil {
		panic(err)
	}

	bs, err := g.Generate()
	if err != nil {
		panic(err)
	}

	err = os.WriteFile("./core/records_mus.gen.go", bs, 0644)
	if err != nil {
		panic(err)
	}
}
