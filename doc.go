// Package lloyd clusters 2-D point sets with Lloyd's K-Means algorithm.
//
// A run seeds K centroids uniformly at random, then for a fixed number of
// passes assigns every point to its nearest centroid (squared Euclidean
// distance, ties to the lower index) and moves each centroid to the mean of
// its members. Centroids that lose all their members stay where they are.
// The result carries the labeled points, the final centroids and the
// inertia (sum of squared distances to the assigned centroids).
//
// # Quick Start
//
//	points := datagen.Canvas(random.NewSeeded(42))
//	res, _ := lloyd.Run(points, 3, 100)
//	fmt.Println(res.Inertia)
//
// # Reproducible runs
//
// Centroid seeding draws from a random.Source. Inject one to make runs
// repeatable:
//
//	eng := lloyd.New(lloyd.WithRandomSource(random.NewSeeded(7)))
//	res, _ := eng.Run(points, lloyd.Config{K: 3, MaxIterations: 100})
//
// # Batches
//
// RunBatch executes independent jobs in parallel, bounded by a
// resource.Controller:
//
//	eng := lloyd.New(lloyd.WithResourceController(resource.NewController(resource.Config{MaxWorkers: 4})))
//	results, _ := eng.RunBatch(ctx, jobs)
//
// # Persistence
//
// Results can be saved to any blobstore.BlobStore (memory, local disk, S3,
// MinIO) through the runstore package, with a catalog (memory or DynamoDB)
// tracking a summary of every run.
package lloyd
