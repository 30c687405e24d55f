// Package migrations embute os arquivos SQL lidos pelo golang-migrate via iofs.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Version é a versão de schema esperada pela aplicação
const Version = 1
