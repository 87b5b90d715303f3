package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/myrcvr/onboardmail/modules/generator"
	"github.com/myrcvr/onboardmail/pkg/email"
	"github.com/myrcvr/onboardmail/pkg/onboarding"
	"github.com/myrcvr/onboardmail/pkg/render"
)

type draftFlags struct {
	client    string
	crm       string
	assetBase string
	products  []string
	guides    []string
}

func (d *draftFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&d.client, "client", "", "client name")
	fs.StringVar(&d.crm, "crm", generator.CRMManaged, "CRM mode: managed or self")
	fs.StringVar(&d.assetBase, "asset-base", "", "base URL for guide images (default $ASSET_BASE_URL or /assets)")
	fs.Func("product", "product display name, repeatable", func(s string) error {
		d.products = append(d.products, s)
		return nil
	})
	fs.Func("guide", "guide name (KNK or Sticky), repeatable", func(s string) error {
		d.guides = append(d.guides, s)
		return nil
	})
}

func (d *draftFlags) selection() (onboarding.Selection, error) {
	return generator.SelectionRequest{
		ClientName:   d.client,
		CRMMode:      d.crm,
		ProductNames: d.products,
		GuideNames:   d.guides,
	}.Selection()
}

func (d *draftFlags) renderOptions(cfg generator.Config) []render.Option {
	base := d.assetBase
	if base == "" {
		base = cfg.AssetBaseURL
	}
	return []render.Option{render.WithAssetBaseURL(base)}
}

// dump is the yaml/json view of a draft: the payload plus its block structure.
type dump struct {
	Subject  string              `json:"subject" yaml:"subject"`
	Sections []onboarding.Section `json:"sections" yaml:"sections"`
	Document onboarding.Document  `json:"document" yaml:"document"`
	HTML     string              `json:"html" yaml:"html"`
	Text     string              `json:"text" yaml:"text"`
}

func renderCmd(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var d draftFlags
	d.register(fs)
	format := fs.String("format", "html", "output format: html, text, json or yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sel, err := d.selection()
	if err != nil {
		return err
	}
	var genCfg generator.Config
	if cfg, err := loadConfig(); err == nil {
		genCfg = cfg.Generator
	}
	opts := d.renderOptions(genCfg)

	doc := onboarding.Assemble(sel)
	switch strings.ToLower(*format) {
	case "html":
		out, err := render.HTML(ctx, doc, opts...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, out)
		return err
	case "text":
		_, err := fmt.Fprint(stdout, render.Text(doc, opts...))
		return err
	case "json", "yaml":
		p, err := render.NewPayload(ctx, sel, opts...)
		if err != nil {
			return err
		}
		out := dump{Subject: p.Subject, Sections: doc.Sections(), Document: doc, HTML: p.HTML, Text: p.Text}
		if strings.EqualFold(*format, "json") {
			enc := json.NewEncoder(stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}

func sendCmd(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var d draftFlags
	d.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.Email.Enabled() {
		return email.ErrDisabled
	}
	sel, err := d.selection()
	if err != nil {
		return err
	}
	if !sel.CanCopy() {
		return errors.New("a client name and at least one product are required")
	}

	sender, err := email.New(cfg.Email)
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	p, err := render.NewPayload(ctx, sel, d.renderOptions(cfg.Generator)...)
	if err != nil {
		return err
	}
	if err := email.NewSink(sender, cfg.Email.Recipient, log).WriteRichText(ctx, p); err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "sent %q to %s\n", p.Subject, cfg.Email.Recipient)
	return err
}
