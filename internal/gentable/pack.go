package gentable

import (
	"fmt"
	"os"

	"github.com/instabridge/zonelooker/internal/zltable"
)

// WriteBinary writes tbl's wire encoding (zltable.Table.Marshal) to binPath.
// Together with WriteEmbedSource, which writes the go:embed loader source
// that sits beside it, this is the generator's output step: the table is
// produced once, offline, and loaded at runtime without re-running
// classification.
func WriteBinary(tbl *zltable.Table, binPath string) error {
	data := tbl.Marshal()
	if err := os.WriteFile(binPath, data, 0o644); err != nil {
		return fmt.Errorf("gentable: writing %s: %w", binPath, err)
	}
	return nil
}

// WriteEmbedSource writes a Go source file that embeds embedFileName (which
// must sit alongside it in the same package directory) and exposes it
// through a loaderFuncName() (*zltable.Table, error) function.
func WriteEmbedSource(goPath, packageName, embedFileName, loaderFuncName string) error {
	src := fmt.Sprintf(`// Code generated by cmd/zonetablegen. DO NOT EDIT.

package %s

import (
	_ "embed"

	"github.com/instabridge/zonelooker/internal/zltable"
)

//go:embed %s
var rawTable []byte

func %s() (*zltable.Table, error) {
	return zltable.Unmarshal(rawTable)
}
`, packageName, embedFileName, loaderFuncName)

	if err := os.WriteFile(goPath, []byte(src), 0o644); err != nil {
		return fmt.Errorf("gentable: writing %s: %w", goPath, err)
	}
	return nil
}
