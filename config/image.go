package config

import (
	"github.com/outofforest/kedro-docker/infra/types"
)

// ImageFactory collects data for image config
type ImageFactory struct {
	// Image is the image tag, if empty it is derived from the project directory
	Image string
}

// Config returns new image config
func (f *ImageFactory) Config(root Root) Image {
	tag := types.ImageTag(f.Image)
	if !tag.IsValid() {
		tag = types.ImageTag(root.ProjectName())
	}
	return Image{
		Tag: tag,
	}
}

// Image stores configuration of the project image
type Image struct {
	// Tag is the image tag
	Tag types.ImageTag
}
