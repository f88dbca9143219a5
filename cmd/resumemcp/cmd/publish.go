package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"resumemcp/internal/adapters/filesystem"
	"resumemcp/internal/adapters/objectstore"
	"resumemcp/internal/adapters/redis"
	"resumemcp/internal/application"
	"resumemcp/internal/application/commands"
	"resumemcp/internal/logger"
	"resumemcp/internal/ports"
)

const (
	targetObjectStore = "objectstore"
	targetRedis       = "redis"
)

var publishTarget string

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload a generated tree to an object store or Redis",
	Long: `Copy every file of the output tree to the configured target under the
same relative path. Files already present with identical content are skipped.

Targets:
  objectstore  S3-compatible bucket (objectstore.* settings)
  redis        one key per file, prefixed by redis.prefix

Examples:
  resumemcp publish --target objectstore
  RESUMEMCP_REDIS_ADDR=cache:6379 resumemcp publish --target redis`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg := GetConfig()
		log := logger.WithComponent("publish")

		var target ports.ArtifactStore
		switch publishTarget {
		case targetObjectStore:
			oc := cfg.ObjectStore
			store, err := objectstore.New(ctx, objectstore.Config{
				Endpoint:  oc.Endpoint,
				AccessKey: oc.AccessKey,
				SecretKey: oc.SecretKey,
				Bucket:    oc.Bucket,
				Prefix:    oc.Prefix,
				UseSSL:    oc.UseSSL,
			}, log)
			if err != nil {
				return err
			}
			target = store

		case targetRedis:
			rc := cfg.Redis
			store, err := redis.New(redis.Config{
				Addr:     rc.Addr,
				Password: rc.Password,
				DB:       rc.DB,
				Prefix:   rc.Prefix,
				TTL:      rc.TTL,
			})
			if err != nil {
				return err
			}
			defer store.Close()
			target = store

		default:
			return fmt.Errorf("%w: %q (expected %s or %s)", application.ErrUnknownTarget, publishTarget, targetObjectStore, targetRedis)
		}

		source := filesystem.NewStore(cfg.OutputDir)
		stats, err := commands.NewPublishCommand(source, target, publishTarget, log).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Published %s to %s (%d uploaded, %d unchanged)\n",
			source.Root(), stats.Target, stats.Uploaded, stats.Skipped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)
	publishCmd.Flags().StringVarP(&publishTarget, "target", "t", targetObjectStore, "objectstore or redis")
}
