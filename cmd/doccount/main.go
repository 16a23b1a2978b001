//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Command doccount writes the character count of every Word and PDF file of
// a directory to a CSV or XLSX report.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"trpc.group/trpc-go/trpc-docsplit/counter"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/document/reader/pdf"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/report"
	"trpc.group/trpc-go/trpc-docsplit/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	input      string
	output     string
	pdfBackend string
	include    []string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "doccount",
		Short:         "Count the characters of Word and PDF files",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			switch opts.pdfBackend {
			case pdf.BackendLayout, pdf.BackendPlain:
				return nil
			default:
				return fmt.Errorf("unknown pdf backend %q, want %s or %s",
					opts.pdfBackend, pdf.BackendLayout, pdf.BackendPlain)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.input, "input", "after", "Directory holding the Word and PDF files")
	flags.StringVar(&opts.output, "output", "统计结果.csv", "Report path; a .xlsx extension writes a workbook")
	flags.StringVar(&opts.pdfBackend, "pdf-backend", pdf.BackendLayout, "PDF text backend: layout or plain")
	flags.StringSliceVar(&opts.include, "include", nil, "Only count files whose name matches one of these glob patterns")
	flags.StringVar(&opts.logLevel, "log-level", log.LevelInfo, "Log level: debug, info, warn, error")
	return cmd
}

func run(ctx context.Context, opts *options) error {
	log.SetLevel(opts.logLevel)
	c := counter.New(
		counter.WithPDFBackend(opts.pdfBackend),
		counter.WithIncludePatterns(opts.include),
	)
	records, err := c.Count(ctx, opts.input)
	if err != nil {
		log.Errorf("count failed: %v", err)
		return err
	}
	if err := report.WriteFile(opts.output, counter.Rows(records)); err != nil {
		return err
	}
	if failed := counter.Failed(records); len(failed) > 0 {
		log.Warnf("%d of %d files could not be read", len(failed), len(records))
	}
	log.Infof("report saved to %s", opts.output)
	return nil
}
