package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/saeid-a/NutriGuide/internal/client"
	"github.com/saeid-a/NutriGuide/internal/config"
	"github.com/saeid-a/NutriGuide/internal/logger"
	"github.com/saeid-a/NutriGuide/internal/models"
	"github.com/saeid-a/NutriGuide/internal/profile"
	"github.com/saeid-a/NutriGuide/pkg/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const tokenEnv = "API_TOKEN"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "profilectl",
		Short:        "Inspect and update nutrition profiles",
		SilenceUsage: true,
	}
	root.AddCommand(
		newShowCmd(),
		newSubmitCmd(),
		newBMRCmd(),
		newConvertCmd(),
		newTokenCmd(),
	)
	return root
}

// newProfileClient builds the API client from the environment. Errors from
// the client are turned into user-facing messages by report.
func newProfileClient() (*client.Client, *config.Config, *zap.Logger, error) {
	cfg, err := config.LoadClientConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	zlog, err := logger.New(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		return nil, nil, nil, err
	}
	c := client.New(client.Options{
		BaseURL:      cfg.APIBaseURL,
		Tokens:       client.EnvToken(tokenEnv),
		MockFallback: cfg.MockFallbackEnabled(),
		Logger:       zlog,
	})
	return c, cfg, zlog, nil
}

func calculatorFor(policyName string) (profile.Calculator, error) {
	policy, err := profile.PolicyByName(policyName)
	if err != nil {
		return profile.Calculator{}, err
	}
	return profile.Calculator{Policy: policy}, nil
}

func report(cmd *cobra.Command, err error) error {
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), client.UserMessage(err))
	}
	return err
}

type showOutput struct {
	Profile        models.UserProfile `json:"profile"`
	DisplayCountry string             `json:"display_country,omitempty"`
	HeightFeet     string             `json:"height_feet,omitempty"`
	HeightInches   string             `json:"height_inches,omitempty"`
	WeightLbs      string             `json:"weight_lbs,omitempty"`
	Age            *int               `json:"age"`
	EstimatedBMR   *float64           `json:"estimated_bmr"`
	BMRValid       bool               `json:"bmr_valid"`
	Warnings       []string           `json:"warnings,omitempty"`
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Fetch the signed-in user's profile and print it with derived values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, cfg, zlog, err := newProfileClient()
			if err != nil {
				return err
			}
			defer func() { _ = zlog.Sync() }()

			calc, err := calculatorFor(cfg.BMRPolicy)
			if err != nil {
				return err
			}

			p, err := c.FetchProfile(cmd.Context())
			if err != nil {
				return report(cmd, err)
			}
			return writeJSON(cmd.OutOrStdout(), buildShowOutput(p, calc))
		},
	}
}

func buildShowOutput(p models.UserProfile, calc profile.Calculator) showOutput {
	form := profile.NewForm(p, calc)
	derived := form.Derived()
	return showOutput{
		Profile:        form.Profile(),
		DisplayCountry: form.DisplayCountry,
		HeightFeet:     form.Feet,
		HeightInches:   form.Inches,
		WeightLbs:      form.Pounds,
		Age:            derived.Age,
		EstimatedBMR:   derived.EstimatedBMR,
		BMRValid:       derived.BMRValid,
		Warnings:       derived.Warnings,
	}
}

func newSubmitCmd() *cobra.Command {
	var (
		file   string
		fields []string
	)
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Send a profile JSON document to the API",
		Long: "Reads a profile document (legacy shapes accepted), reconciles it and " +
			"submits it. With --field only the named wire fields are sent.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readInput(cmd, file)
			if err != nil {
				return err
			}
			raw, err := profile.DecodeRaw(data)
			if err != nil {
				return err
			}
			p, issues := profile.Reconcile(raw)
			for _, issue := range issues {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", issue)
			}

			c, _, zlog, err := newProfileClient()
			if err != nil {
				return err
			}
			defer func() { _ = zlog.Sync() }()

			var saved models.UserProfile
			if len(fields) > 0 {
				saved, err = c.SubmitFields(cmd.Context(), p, fields...)
			} else {
				saved, err = c.Submit(cmd.Context(), p)
			}
			if err != nil {
				return report(cmd, err)
			}
			return writeJSON(cmd.OutOrStdout(), saved)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "profile JSON file, - for stdin")
	cmd.Flags().StringSliceVar(&fields, "field", nil, "submit only these wire fields (repeatable)")
	return cmd
}

func readInput(cmd *cobra.Command, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(file)
}

type bmrOutput struct {
	Age          int     `json:"age"`
	EstimatedBMR float64 `json:"estimated_bmr"`
	Entered      *int    `json:"entered,omitempty"`
	Valid        *bool   `json:"valid,omitempty"`
	Tolerance    float64 `json:"tolerance"`
	Policy       string  `json:"policy"`
}

func newBMRCmd() *cobra.Command {
	var (
		weight, height float64
		dob, gender    string
		policyName     string
		entered        int
	)
	cmd := &cobra.Command{
		Use:   "bmr",
		Short: "Estimate basal metabolic rate and check an entered value",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if weight <= 0 || height <= 0 {
				return errors.New("--weight and --height must be greater than 0")
			}
			birth, err := models.ParseDate(dob)
			if err != nil {
				return fmt.Errorf("--dob: %w", err)
			}
			calc, err := calculatorFor(policyName)
			if err != nil {
				return err
			}

			age := calc.Age(birth.Time)
			out := bmrOutput{
				Age:          age,
				EstimatedBMR: calc.BMR(weight, height, age, gender),
				Tolerance:    profile.BMRTolerance,
				Policy:       policyLabel(policyName),
			}
			if cmd.Flags().Changed("entered") {
				valid := profile.ValidateBMR(entered, out.EstimatedBMR)
				out.Entered = &entered
				out.Valid = &valid
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().Float64Var(&weight, "weight", 0, "weight in kg")
	cmd.Flags().Float64Var(&height, "height", 0, "height in cm")
	cmd.Flags().StringVar(&dob, "dob", "", "date of birth, YYYY-MM-DD")
	cmd.Flags().StringVar(&gender, "gender", profile.GenderFemale, "gender label")
	cmd.Flags().StringVar(&policyName, "policy", "", "coefficient policy: harris-benedict or averaged")
	cmd.Flags().IntVar(&entered, "entered", 0, "a measured BMR to check against the estimate")
	_ = cmd.MarkFlagRequired("dob")
	return cmd
}

func policyLabel(name string) string {
	if name == "" {
		return "harris-benedict"
	}
	return name
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between metric and imperial body measurements",
	}

	var feet, inches string
	var cm float64
	height := &cobra.Command{
		Use:   "height",
		Short: "Convert feet/inches to centimeters, or --cm to feet/inches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("cm") {
				f, i := profile.CmToFeetInches(cm)
				fmt.Fprintf(cmd.OutOrStdout(), "%d ft %d in\n", f, i)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s cm\n", formatNumber(profile.FeetInchesToCm(feet, inches)))
			return nil
		},
	}
	height.Flags().StringVar(&feet, "feet", "", "feet")
	height.Flags().StringVar(&inches, "inches", "", "inches")
	height.Flags().Float64Var(&cm, "cm", 0, "centimeters")

	var lbs string
	var kg float64
	weight := &cobra.Command{
		Use:   "weight",
		Short: "Convert pounds to kilograms, or --kg to pounds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("kg") {
				fmt.Fprintf(cmd.OutOrStdout(), "%s lbs\n", formatNumber(profile.KgToLbs(kg)))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s kg\n", formatNumber(profile.LbsToKg(lbs)))
			return nil
		},
	}
	weight.Flags().StringVar(&lbs, "lbs", "", "pounds")
	weight.Flags().Float64Var(&kg, "kg", 0, "kilograms")

	cmd.AddCommand(height, weight)
	return cmd
}

func newTokenCmd() *cobra.Command {
	var (
		userID int64
		secret string
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for a local profile API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if secret == "" {
				secret = os.Getenv("JWT_SECRET")
			}
			if secret == "" {
				return errors.New("--secret or JWT_SECRET is required")
			}
			if userID <= 0 {
				return errors.New("--user-id must be greater than 0")
			}
			token, err := utils.GenerateToken(strconv.FormatInt(userID, 10), "user", secret)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s; export it as %s\n", time.Now().Add(utils.TokenTTL).Format(time.RFC3339), tokenEnv)
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user-id", 0, "numeric user id")
	cmd.Flags().StringVar(&secret, "secret", "", "signing secret, defaults to JWT_SECRET")
	return cmd
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
