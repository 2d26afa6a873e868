//go:build unit

package queries_test

import (
	"testing"

	"webshopper/internal/infra/kroger"
	"webshopper/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestLargestImagesPicksLargestPerPerspective(t *testing.T) {
	images := []kroger.Image{
		{
			Perspective: "front",
			Sizes: []kroger.ImageSize{
				{Size: "thumbnail", URL: "front-thumb"},
				{Size: "xlarge", URL: "front-xl"},
				{Size: "medium", URL: "front-md"},
			},
		},
		{
			Perspective: "back",
			Sizes: []kroger.ImageSize{
				{Size: "small", URL: "back-sm"},
				{Size: "large", URL: "back-lg"},
			},
		},
	}

	got := queries.LargestImages(images)

	want := []queries.ProductImageView{
		{Perspective: "front", URL: "front-xl"},
		{Perspective: "back", URL: "back-lg"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LargestImages mismatch (-want +got):\n%s", diff)
	}
}

func TestLargestImagesSkipsUnknownSizes(t *testing.T) {
	images := []kroger.Image{
		{
			Perspective: "front",
			Sizes: []kroger.ImageSize{
				{Size: "enormous", URL: "front-huge"},
				{Size: "small", URL: "front-sm"},
			},
		},
		{
			// Only unrecognized renditions: the perspective is dropped entirely.
			Perspective: "back",
			Sizes: []kroger.ImageSize{
				{Size: "enormous", URL: "back-huge"},
			},
		},
	}

	got := queries.LargestImages(images)

	want := []queries.ProductImageView{
		{Perspective: "front", URL: "front-sm"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LargestImages mismatch (-want +got):\n%s", diff)
	}
}

func TestLargestImagesEmptyInput(t *testing.T) {
	assert.Empty(t, queries.LargestImages(nil))
	assert.Empty(t, queries.LargestImages([]kroger.Image{{Perspective: "front"}}))
}
