//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Command docsplit splits the Word and PDF files of a directory into
// fixed-size Word documents.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/chunking"
	"trpc.group/trpc-go/trpc-docsplit/log"
	"trpc.group/trpc-go/trpc-docsplit/splitter"
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
	input        string
	output       string
	charLimit    int
	pdfCharLimit int
	threshold    int
	pdfLayout    bool
	include      []string
	logLevel     string
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "docsplit",
		Short:         "Split Word and PDF files into fixed-size Word documents",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.input, "input", "input_folder", "Directory holding the Word and PDF files")
	flags.StringVar(&opts.output, "output", splitter.DefaultOutputDir, "Directory receiving one folder per split file")
	flags.IntVar(&opts.charLimit, "char-limit", chunking.DefaultChunkSize, "Characters per chunk for Word files")
	flags.IntVar(&opts.pdfCharLimit, "pdf-char-limit", chunking.DefaultChunkSize, "Characters per chunk for PDF files")
	flags.IntVar(&opts.threshold, "threshold", splitter.DefaultThreshold, "Skip files with at least this many characters")
	flags.BoolVar(&opts.pdfLayout, "pdf-layout", false, "Rebuild PDF text from positioned rows")
	flags.StringSliceVar(&opts.include, "include", nil, "Only process files whose name matches one of these glob patterns")
	flags.StringVar(&opts.logLevel, "log-level", log.LevelInfo, "Log level: debug, info, warn, error")
	return cmd
}

func run(ctx context.Context, opts *options) error {
	log.SetLevel(opts.logLevel)
	s := splitter.New(
		splitter.WithOutputDir(opts.output),
		splitter.WithWordCharLimit(opts.charLimit),
		splitter.WithPDFCharLimit(opts.pdfCharLimit),
		splitter.WithThreshold(opts.threshold),
		splitter.WithPDFLayoutAware(opts.pdfLayout),
		splitter.WithIncludePatterns(opts.include),
	)
	if _, err := s.Run(ctx, opts.input); err != nil {
		log.Errorf("split failed: %v", err)
		return err
	}
	return nil
}
