package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"SignalScope/internal/model"
)

// printAnalysis writes the trailing rows of an analysis as an aligned table.
func printAnalysis(out io.Writer, a *model.Analysis, tail int) {
	fmt.Fprintf(out, "%s: %d bars, %d crossovers\n\n", a.Symbol, len(a.Bars), len(a.Crossovers))

	first := 0
	if tail > 0 && len(a.Bars) > tail {
		first = len(a.Bars) - tail
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tCLOSE\tRSI\tMACD\tSIGNAL LINE\tHIST\tSIGNAL")
	for i := first; i < len(a.Bars); i++ {
		ind := a.Indicators[i]
		fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\t%s\t%s\t%s\n",
			a.Bars[i].Time.Format("2006-01-02"),
			a.Bars[i].Close,
			fmtVal(ind.RSI),
			fmtVal(ind.MACD),
			fmtVal(ind.MACDSignal),
			fmtVal(ind.MACDHist),
			a.Signals[i].Signal,
		)
	}
	w.Flush()

	if len(a.Crossovers) > 0 {
		last := a.Crossovers[len(a.Crossovers)-1]
		fmt.Fprintf(out, "\nlast crossover: %s %s\n", last.Time.Format("2006-01-02"), last.Direction)
	}
}

func fmtVal(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.4f", *v)
}
