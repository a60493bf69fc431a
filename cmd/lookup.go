package main

import (
	"encoding/json"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/addressdata/internal/model"
	"github.com/sells-group/addressdata/internal/supply"
)

var (
	lookupLanguage string
	lookupOutput   string
	lookupOffline  bool
)

// hierarchyView is the printable form of a resolved hierarchy.
type hierarchyView struct {
	Success bool        `json:"success" yaml:"success"`
	Key     string      `json:"key" yaml:"key"`
	Levels  []levelView `json:"levels" yaml:"levels"`
}

type levelView struct {
	Depth    int      `json:"depth" yaml:"depth"`
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name,omitempty" yaml:"name,omitempty"`
	Format   string   `json:"format,omitempty" yaml:"format,omitempty"`
	Required []string `json:"required,omitempty" yaml:"required,omitempty"`
	Postal   string   `json:"postal_pattern,omitempty" yaml:"postal_pattern,omitempty"`
	SubKeys  []string `json:"sub_keys,omitempty" yaml:"sub_keys,omitempty"`
}

func viewOf(res supply.Result) hierarchyView {
	view := hierarchyView{
		Success: res.Success,
		Key:     res.Key.String(),
	}
	for i, rec := range res.Records {
		if rec == nil {
			continue
		}
		lv := levelView{
			Depth:    i + 1,
			ID:       rec.ID,
			Name:     rec.Name,
			Format:   rec.Format,
			Required: rec.Required,
			SubKeys:  rec.SubKeys,
		}
		if rec.PostalPattern != nil {
			lv.Postal = rec.PostalPattern.String()
		}
		view.Levels = append(view.Levels, lv)
	}
	return view
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <key>",
	Short: "Resolve metadata for one canonical key",
	Long:  "Resolves the metadata hierarchy for a canonical key such as data/US or data/US/CA and prints it. Every ancestor level is resolved alongside the key itself.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := model.ParseKey(args[0])
		if err != nil {
			return err
		}
		if lookupLanguage != "" {
			tag, err := language.Parse(lookupLanguage)
			if err != nil {
				return eris.Wrapf(err, "parse language %q", lookupLanguage)
			}
			base, _ := tag.Base()
			addr := model.Address{
				RegionCode: key.Node(1),
				Language:   base.String(),
			}
			if key.Depth() >= 2 {
				addr.AdministrativeArea = key.Node(2)
			}
			if key.Depth() >= 3 {
				addr.Locality = key.Node(3)
			}
			if key.Depth() >= 4 {
				addr.DependentLocality = key.Node(4)
			}
			key = model.KeyForAddress(addr)
		}

		ctx := cmd.Context()
		env, err := initSupplier(ctx, cfg, lookupOffline)
		if err != nil {
			return err
		}
		defer env.Close()

		res := env.Supplier.Resolve(ctx, key)
		view := viewOf(res)

		switch lookupOutput {
		case "yaml":
			out, err := yaml.Marshal(view)
			if err != nil {
				return eris.Wrap(err, "marshal yaml")
			}
			cmd.OutOrStdout().Write(out)
		default:
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(view); err != nil {
				return eris.Wrap(err, "marshal json")
			}
		}

		if !res.Success {
			return eris.Errorf("lookup %s did not fully resolve", res.Key.String())
		}
		return nil
	},
}

func init() {
	lookupCmd.Flags().StringVar(&lookupLanguage, "language", "", "BCP-47 language for language-variant metadata (e.g. fr)")
	lookupCmd.Flags().StringVarP(&lookupOutput, "output", "o", "json", "output format: json or yaml")
	lookupCmd.Flags().BoolVar(&lookupOffline, "offline", false, "resolve from the embedded dataset only")
	rootCmd.AddCommand(lookupCmd)
}
