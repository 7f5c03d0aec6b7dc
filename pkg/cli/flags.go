// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cookbook/pkg/serializer"
)

// Flags are built per command: urfave/cli flags keep parse state.

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output destination: file path or cm://namespace/name (default: stdout)",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func catalogFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "catalog",
		Aliases: []string{"c"},
		Usage:   "catalog source: file path, http(s) URL, or cm://namespace/name",
	}
}

func parseOutputFormat(format string) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(format)))
	if f == "" || f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %s)",
			format, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// writeOutput serializes v to --output, or to the root command writer when
// no output is set.
func (s *settings) writeOutput(ctx context.Context, cmd *cli.Command, v any) error {
	format, err := parseOutputFormat(s.get(cmd, "format"))
	if err != nil {
		return err
	}

	output := cmd.String("output")
	if output == "" {
		return serializer.NewWriter(format, cmd.Root().Writer).Serialize(ctx, v)
	}

	ser, err := serializer.NewFileWriterOrStdout(format, output)
	if err != nil {
		return fmt.Errorf("failed to create output writer: %w", err)
	}
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	if err := ser.Serialize(ctx, v); err != nil {
		return fmt.Errorf("failed to serialize output: %w", err)
	}
	slog.Debug("output written", "destination", output, "format", format)
	return nil
}
