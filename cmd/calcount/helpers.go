package calcount

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shastriUF/calorie-counter/internal/app"
	"github.com/shastriUF/calorie-counter/internal/logger"
	"github.com/shastriUF/calorie-counter/internal/service"
	"github.com/shastriUF/calorie-counter/internal/store"
)

func withGateway(run func(context.Context, *service.Gateway) error) error {
	path := strings.TrimSpace(storePath)
	if path == "" {
		var err error
		path, err = app.DefaultStorePath()
		if err != nil {
			return err
		}
	}
	if err := app.EnsureStoreDir(path); err != nil {
		return err
	}
	st, err := store.OpenSQLite(path)
	if err != nil {
		return err
	}
	defer st.Close()

	log, err := logger.New(verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	return run(context.Background(), service.NewGateway(st, log))
}

// dayKeyFromFlag turns an optional YYYY-MM-DD flag into the store's date
// key, defaulting to today.
func dayKeyFromFlag(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return service.DateKey(time.Now()), nil
	}
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
	}
	return service.DateKey(t), nil
}

// parseIndexArg parses a list position as shown by the list commands.
func parseIndexArg(name, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s %q (expected a position from the list output)", name, value)
	}
	return v, nil
}

// warnStale notes a degraded load. The empty default keeps the session
// usable; the user should still know the store could not be read.
func warnStale(cmd *cobra.Command, err error) {
	if err != nil && errors.Is(err, service.ErrStorageIO) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v (continuing with empty state)\n", err)
	}
}
