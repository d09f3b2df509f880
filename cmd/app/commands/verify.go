package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	emailUseCase "github.com/allisson/mejla/internal/email/usecase"
)

// RunVerify checks that every stored profile decrypts with one encryption
// password. It fails when any profile does not.
func RunVerify(
	ctx context.Context,
	settingsUseCase emailUseCase.SettingsUseCase,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	results, err := settingsUseCase.VerifyAll(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to verify settings: %w", err)
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}

	if format == "json" {
		if err := outputVerifyJSON(writer, results, failed); err != nil {
			return fmt.Errorf("failed to output JSON: %w", err)
		}
	} else {
		outputVerifyText(writer, results, failed)
	}

	logger.Info("verification completed",
		slog.Int("total_checked", len(results)),
		slog.Int("failed", failed),
	)

	if failed > 0 {
		return fmt.Errorf("verification failed: %d profile(s) could not be decrypted", failed)
	}
	return nil
}

// outputVerifyText outputs the verification result in human-readable text format.
func outputVerifyText(writer io.Writer, results []emailUseCase.VerifyResult, failed int) {
	for _, r := range results {
		if r.Err != nil {
			_, _ = fmt.Fprintf(writer, "%-20s FAILED (%v)\n", r.Profile, r.Err)
			continue
		}
		_, _ = fmt.Fprintf(writer, "%-20s OK\n", r.Profile)
	}

	switch {
	case len(results) == 0:
		_, _ = fmt.Fprintf(writer, "Status: No profiles configured\n")
	case failed > 0:
		_, _ = fmt.Fprintf(writer, "\nStatus: FAILED (%d of %d)\n", failed, len(results))
	default:
		_, _ = fmt.Fprintf(writer, "\nStatus: PASSED\n")
	}
}

// outputVerifyJSON outputs the verification result in JSON format for machine consumption.
func outputVerifyJSON(writer io.Writer, results []emailUseCase.VerifyResult, failed int) error {
	profiles := make([]map[string]interface{}, 0, len(results))
	for _, r := range results {
		entry := map[string]interface{}{
			"profile": r.Profile,
			"ok":      r.Err == nil,
		}
		if r.Err != nil {
			entry["error"] = r.Err.Error()
		}
		profiles = append(profiles, entry)
	}

	result := map[string]interface{}{
		"total_checked": len(results),
		"failed_count":  failed,
		"profiles":      profiles,
		"passed":        failed == 0,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
	return nil
}
