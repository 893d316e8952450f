//go:build cgo

// libpostal-compare runs a single address through the deterministic rule
// workflows and prints libpostal's expansions and parse alongside, for
// tuning the rule tables against a statistical baseline. Requires
// libpostal installed (cgo).
package main

import (
	"flag"
	"fmt"
	"strings"

	expand "github.com/openvenues/gopostal/expand"
	postal "github.com/openvenues/gopostal/parser"

	"github.com/massprop-dedup/internal/flow"
	"github.com/massprop-dedup/internal/table"
)

func main() {
	var (
		address   = flag.String("address", "", "Address to compare")
		showParse = flag.Bool("parse", false, "Also show libpostal's component parse")
	)
	flag.Parse()

	if *address == "" {
		fmt.Println("Usage:")
		fmt.Println("  ./libpostal-compare -address=\"123 N. Main St Apt 3B\"")
		fmt.Println("  ./libpostal-compare -address=\"PO Box 45\" -parse")
		return
	}

	fmt.Printf("input:      %s\n", *address)
	fmt.Printf("rule flow:  %s\n", runAddressFlow(*address))

	for i, expansion := range expand.ExpandAddress(*address) {
		fmt.Printf("libpostal %d: %s\n", i+1, expansion)
	}

	if *showParse {
		fmt.Println("libpostal parse:")
		for _, component := range postal.ParseAddress(*address) {
			fmt.Printf("   %-15s: %s\n", component.Label, component.Value)
		}
	}
}

// runAddressFlow pushes one value through the string and address
// workflows the way the ETL pipeline would.
func runAddressFlow(raw string) string {
	t := table.MustNew(table.TextColumn("addr", table.String(strings.ToUpper(raw))))
	out := flow.Strings().Run(t, []string{"addr"})
	out = flow.Addresses().Run(out, []string{"addr"})

	values, _ := out.TextValues("addr")
	if !values[0].Valid {
		return "(null)"
	}
	return values[0].String
}
