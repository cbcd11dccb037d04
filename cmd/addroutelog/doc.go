// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Addroutelog inserts error-routing calls into Express route catch blocks.

It scans a JavaScript source file for catch blocks of the form

	} catch (error) {
	  console.error('Failed:', error);
	  res.status(500).send('Internal Server Error');

and inserts

	await logRouteError(error, req).catch(() => {});

between the console.error and res.status lines. Blocks that already mention
logRouteError or logCriticalError are left alone, so running the tool twice
over the same file is safe. The file is rewritten only when at least one
insertion was made.

Usage:

	addroutelog [flags] <filepath>
*/
package main

import (
	_ "embed"

	"addroutelog/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
