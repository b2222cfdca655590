package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"critval/adapters/excel"
	"critval/adapters/report"
	"critval/app"
	"critval/domain/critical"
	"critval/internal"
	"critval/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "critval",
		Short: "Critical-value calculator for common hypothesis tests",
	}

	rootCmd.AddCommand(
		newOneSampleCmd(),
		newTwoSampleCmd(),
		newPairedCmd(),
		newCorrelationCmd(),
		newCoefficientCmd(),
		newSweepCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newService() *app.CriticalService {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return app.NewCriticalService(internal.DefaultLogger, critical.Options{
		Hypothesis: critical.Hypothesis(cfg.Defaults.Hypothesis),
		ConfLevel:  cfg.Defaults.ConfLevel,
	})
}

// floatFlag reports an optional flag: nil when the user did not set it.
func floatFlag(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		return nil
	}
	return &v
}

func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("conf", 0, "Confidence level, e.g. 0.95 (default from CONF_LEVEL)")
	cmd.Flags().String("hypothesis", "", "two.sided, greater or less (default from HYPOTHESIS)")
	cmd.Flags().Float64("se", 0, "Standard error override")
	cmd.Flags().Float64("df", 0, "Degrees of freedom override")
}

func commonOptions(cmd *cobra.Command) critical.Options {
	hyp, _ := cmd.Flags().GetString("hypothesis")
	conf, _ := cmd.Flags().GetFloat64("conf")
	return critical.Options{
		Hypothesis: critical.Hypothesis(hyp),
		ConfLevel:  conf,
		SE:         floatFlag(cmd, "se"),
		DF:         floatFlag(cmd, "df"),
	}
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func newOneSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "t1s",
		Short: "Critical values for a one-sample t-test",
		Long: `Derive the critical effect size for a one-sample t-test, from either
summary statistics (--m --s --n) or an observed t statistic (--t --n).

Example: critval t1s --m 0.5 --s 1 --n 30 --conf 0.95`,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetFloat64("n")
			var in critical.OneSampleInput
			if m := floatFlag(cmd, "m"); m != nil {
				s, _ := cmd.Flags().GetFloat64("s")
				in = critical.OneSampleSummary{Mean: *m, SD: s, N: n}
			} else {
				in = critical.OneSampleStatistic{T: floatFlag(cmd, "t"), N: n}
			}

			res, err := newService().OneSample(in, commonOptions(cmd))
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}

	cmd.Flags().Float64("m", 0, "Sample mean (summary mode)")
	cmd.Flags().Float64("s", 0, "Sample standard deviation (summary mode)")
	cmd.Flags().Float64("t", 0, "Observed t statistic (statistic mode)")
	cmd.Flags().Float64("n", 0, "Sample size")
	addCommonFlags(cmd)
	cmd.MarkFlagRequired("n")

	return cmd
}

func newTwoSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "t2s",
		Short: "Critical values for an independent two-sample t-test",
		Long: `Derive the critical effect size for an independent two-sample t-test.
Summary mode uses --m1 --m2 --sd1 --sd2 --n1 --n2; statistic mode uses
--t --n1 --n2. Pass --var-equal for the pooled-variance test, otherwise
Welch degrees of freedom are used.

Example: critval t2s --m1 1.2 --m2 0.8 --sd1 1 --sd2 1.1 --n1 30 --n2 28`,
		RunE: func(cmd *cobra.Command, args []string) error {
			n1, _ := cmd.Flags().GetFloat64("n1")
			n2, _ := cmd.Flags().GetFloat64("n2")
			var in critical.TwoSampleInput
			if m1 := floatFlag(cmd, "m1"); m1 != nil {
				m2, _ := cmd.Flags().GetFloat64("m2")
				sd1, _ := cmd.Flags().GetFloat64("sd1")
				sd2, _ := cmd.Flags().GetFloat64("sd2")
				in = critical.TwoSampleSummary{M1: *m1, M2: m2, SD1: sd1, SD2: sd2, N1: n1, N2: n2}
			} else {
				in = critical.TwoSampleStatistic{T: floatFlag(cmd, "t"), N1: n1, N2: n2}
			}

			opts := commonOptions(cmd)
			opts.EqualVariances, _ = cmd.Flags().GetBool("var-equal")

			res, err := newService().TwoSample(in, opts)
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}

	cmd.Flags().Float64("m1", 0, "First sample mean")
	cmd.Flags().Float64("m2", 0, "Second sample mean")
	cmd.Flags().Float64("sd1", 0, "First sample standard deviation")
	cmd.Flags().Float64("sd2", 0, "Second sample standard deviation")
	cmd.Flags().Float64("n1", 0, "First sample size")
	cmd.Flags().Float64("n2", 0, "Second sample size")
	cmd.Flags().Float64("t", 0, "Observed t statistic (statistic mode)")
	cmd.Flags().Bool("var-equal", false, "Assume equal variances (pooled test)")
	addCommonFlags(cmd)
	cmd.MarkFlagRequired("n1")
	cmd.MarkFlagRequired("n2")

	return cmd
}

func newPairedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "t2sp",
		Short: "Critical values for a paired t-test",
		Long: `Derive critical effect sizes for a paired t-test. Two-condition summary
mode uses --m1 --m2 --sd1 --sd2 --n (and optionally --r12); difference-score
mode uses --m1 --sd1 --n; statistic mode uses --t --n.

Example: critval t2sp --m1 1.0 --m2 0.7 --sd1 0.9 --sd2 1.0 --r12 0.5 --n 25`,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetFloat64("n")
			var in critical.PairedInput
			if m1 := floatFlag(cmd, "m1"); m1 != nil {
				sd1, _ := cmd.Flags().GetFloat64("sd1")
				in = critical.PairedSummary{
					M1: *m1, SD1: sd1, N: n,
					M2: floatFlag(cmd, "m2"), SD2: floatFlag(cmd, "sd2"),
					R12: floatFlag(cmd, "r12"),
				}
			} else {
				in = critical.PairedStatistic{T: floatFlag(cmd, "t"), N: n, R12: floatFlag(cmd, "r12")}
			}

			res, err := newService().Paired(in, commonOptions(cmd))
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}

	cmd.Flags().Float64("m1", 0, "First condition mean, or difference mean")
	cmd.Flags().Float64("m2", 0, "Second condition mean")
	cmd.Flags().Float64("sd1", 0, "First condition SD, or difference SD")
	cmd.Flags().Float64("sd2", 0, "Second condition SD")
	cmd.Flags().Float64("r12", 0, "Correlation between conditions")
	cmd.Flags().Float64("n", 0, "Number of pairs")
	cmd.Flags().Float64("t", 0, "Observed t statistic (statistic mode)")
	addCommonFlags(cmd)
	cmd.MarkFlagRequired("n")

	return cmd
}

func newCorrelationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cor",
		Short: "Critical correlation coefficient",
		Long: `Derive the critical correlation coefficient for a given sample size,
via the t distribution (default) or Fisher's z transformation (--test z).

Example: critval cor --n 30 --r 0.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetFloat64("n")
			test, _ := cmd.Flags().GetString("test")

			opts := commonOptions(cmd)
			opts.Test = critical.TestMethod(test)

			res, err := newService().Correlation(critical.CorrelationInput{
				N: n, R: floatFlag(cmd, "r"),
			}, opts)
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}

	cmd.Flags().Float64("n", 0, "Sample size")
	cmd.Flags().Float64("r", 0, "Observed correlation")
	cmd.Flags().String("test", "t", "Test method: t or z")
	addCommonFlags(cmd)
	cmd.MarkFlagRequired("n")

	return cmd
}

func newCoefficientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coef",
		Short: "Critical regression coefficients",
		Long: `Derive critical values for regression coefficients from their standard
errors. Degrees of freedom come from --df, or from --n and --p (n-p-1).

Example: critval coef --seb 0.12,0.08 --n 100 --p 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seb, _ := cmd.Flags().GetFloat64Slice("seb")
			test, _ := cmd.Flags().GetString("test")

			opts := commonOptions(cmd)
			opts.Test = critical.TestMethod(test)

			res, err := newService().Coefficient(critical.CoefficientInput{
				SEB: seb,
				N:   floatFlag(cmd, "n"),
				P:   floatFlag(cmd, "p"),
			}, opts)
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}

	cmd.Flags().Float64Slice("seb", nil, "Standard errors of the coefficients")
	cmd.Flags().Float64("n", 0, "Sample size")
	cmd.Flags().Float64("p", 0, "Number of predictors")
	cmd.Flags().String("test", "t", "Test method: t or z")
	addCommonFlags(cmd)
	cmd.MarkFlagRequired("seb")

	return cmd
}

func newSweepCmd() *cobra.Command {
	var sizes []float64
	var levels []float64
	var xlsxPath string
	var markdown bool

	cmd := &cobra.Command{
		Use:   "sweep [family...]",
		Short: "Evaluate critical values over a grid of sample sizes",
		Long: `Evaluate critical values for one or more test families over a grid of
sample sizes and confidence levels. Families: t1s, t2s, t2sp, cor.

Example: critval sweep t1s cor --sizes 10,20,50 --levels 0.90,0.95 --xlsx grid.xlsx`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := app.NewSweepService(internal.DefaultLogger)

			results := make([]*app.SweepResult, 0, len(args))
			for _, family := range args {
				res, err := svc.Run(cmd.Context(), app.SweepRequest{
					Family:      app.Family(family),
					SampleSizes: sizes,
					ConfLevels:  levels,
				})
				if err != nil {
					return err
				}
				results = append(results, res)
			}

			if xlsxPath != "" {
				if err := excel.NewSweepWriter(xlsxPath).Write(results); err != nil {
					return err
				}
				fmt.Printf("Wrote %d sheet(s) to %s\n", len(results), xlsxPath)
				return nil
			}

			if markdown {
				for _, res := range results {
					fmt.Println(report.RenderSweep(res))
				}
				return nil
			}

			return printJSON(results)
		},
	}

	cmd.Flags().Float64SliceVar(&sizes, "sizes", nil, "Sample sizes to evaluate")
	cmd.Flags().Float64SliceVar(&levels, "levels", nil, "Confidence levels to evaluate")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Write results to an .xlsx workbook")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Print markdown tables instead of JSON")
	cmd.MarkFlagRequired("sizes")

	return cmd
}
