package main

import (
	"fmt"
	"io"

	"github.com/hupe1980/lloyd"
	"github.com/hupe1980/lloyd/codec"
	"github.com/hupe1980/lloyd/pointio"
)

func render(w io.Writer, res *lloyd.RunResult, format string, c codec.Codec) error {
	switch format {
	case "json":
		data, err := c.Marshal(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "csv":
		return pointio.WriteCSV(w, res.Points)
	case "text":
		return writeText(w, res)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeText(w io.Writer, res *lloyd.RunResult) error {
	fmt.Fprintf(w, "run:        %s\n", res.ID)
	fmt.Fprintf(w, "points:     %d\n", len(res.Points))
	fmt.Fprintf(w, "k:          %d\n", res.K)
	fmt.Fprintf(w, "iterations: %d\n", res.Iterations)
	fmt.Fprintf(w, "inertia:    %.4f\n", res.Inertia)
	if res.Silhouette != nil {
		fmt.Fprintf(w, "silhouette: %.4f\n", *res.Silhouette)
	}
	fmt.Fprintf(w, "elapsed:    %.3fms\n", res.ElapsedMillis)

	sizes := res.ClusterSizes()
	for i, c := range res.Centroids {
		if _, err := fmt.Fprintf(w, "  cluster %d: (%.2f, %.2f) %d points\n", i, c.X, c.Y, sizes[i]); err != nil {
			return err
		}
	}
	return nil
}
