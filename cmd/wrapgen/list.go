// Copyright 2026 go-wrap Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/ajroetker/go-wrap/wrap"
)

// writePlan renders the wrappers a generation pass would register.
func writePlan(w io.Writer, plan []wrap.PlanEntry) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "WRAPPER", "FUNCTION", "ARGS", "RETURNS"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("\t")
	table.SetAutoWrapText(false)

	for _, e := range plan {
		argTypes := lo.Map(e.Args, func(a wrap.Argument, _ int) string { return a.Type.QualifiedName("::") })
		table.Append([]string{
			strconv.Itoa(e.ID),
			e.Wrapper,
			e.Function.QualifiedName("."),
			"(" + strings.Join(argTypes, ", ") + ")",
			e.Return.ReturnType(false),
		})
	}
	table.Render()
}
