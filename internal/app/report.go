package app

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fredshone/factory/internal/factory"
)

// writeReport prints the visit and build sequences, each visited station's
// resolved demand and resource keys, and the build effects when there are
// any. A plan-only result has no build order.
func writeReport(w io.Writer, g *factory.Graph, result *factory.Result) error {
	fmt.Fprintf(w, "Visit order: %s\n", strings.Join(g.Names(result.Visited), " -> "))
	if len(result.Built) > 0 {
		fmt.Fprintf(w, "Build order: %s\n", strings.Join(g.Names(result.Built), " -> "))
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STATION\tDEPTH\tDEMAND\tRESOURCES")
	for _, id := range result.Visited {
		d, _ := g.CachedDemand(id)
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", g.Name(id), g.Depth(id), d.String(), orDash(g.Resources(id)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(result.Built) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STATION\tBUILT\tTYPE\tINPUTS")
	for _, e := range result.Effects {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Station, e.Key, e.Type, orDash(e.Inputs))
	}
	return tw.Flush()
}

func orDash(keys []string) string {
	if len(keys) == 0 {
		return "-"
	}
	return strings.Join(keys, ",")
}
