// Package redis wraps go-redis for the geo index.
//
// The client exposes only what importing and searching need: key deletion
// and SCAN, hashes for the attribute records, the GEO set commands
// (GEOADD, GEOSEARCH) and a MULTI/EXEC batch commit that writes a batch of
// attribute hashes and its GEOADD atomically. Every call is reported to an
// optional observability.Observer, which the metrics package implements.
//
// Basic usage:
//
//	client, err := redis.NewClient(redis.Config{Host: "localhost", Port: 6379})
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	added, err := client.GeoAdd(ctx, "all_locations", &redis.GeoLocation{
//		Name:      "loc:1",
//		Longitude: -73.98,
//		Latitude:  40.75,
//	})
//
// With fx:
//
//	app := fx.New(
//		logger.FXModule,
//		metrics.FXModule,
//		redis.FXModule,
//		fx.Supply(redisConfig),
//	)
package redis
