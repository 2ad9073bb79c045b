// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"io"

	"github.com/aclements/go-gg/table"
	"github.com/google/safehtml/template"
)

var htmlTemplate = template.Must(template.New("benchtab").Parse(`<table class='benchtab'>
<thead>
<tr>{{range .Header}}<th>{{.}}{{end}}
</thead>
<tbody>
{{range .Rows -}}
<tr>{{range .}}<td>{{.}}{{end}}
{{end -}}
</tbody>
</table>
`))

type htmlTable struct {
	Header []string
	Rows   [][]string
}

// writeHTML writes g as an HTML table.
func writeHTML(w io.Writer, g table.Grouping) error {
	return htmlTemplate.Execute(w, htmlTable{g.Columns(), rows(g)})
}
