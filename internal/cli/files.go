package cli

import (
	"fmt"
	"os"

	"github.com/timelinekit/timelinekit/pkg/codec"
	"github.com/timelinekit/timelinekit/pkg/constants"
	"github.com/timelinekit/timelinekit/pkg/timeline"
)

const filePermission = 0644

// readTimeline loads a timeline file, picking the codec from its extension.
func readTimeline(path string) (*timeline.TimelineModel, error) {
	c, err := codec.ForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Reject documents from a newer schema before decoding them.
	if _, ok := c.(codec.JSON); ok {
		v, err := codec.PeekVersion(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if v > timeline.SchemaVersion {
			return nil, fmt.Errorf("%s: version %d: %w", path, v, constants.ErrUnsupportedVersion)
		}
	}

	m, err := codec.Decode[timeline.TimelineData, timeline.TimelineModel](c, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// writeTimeline writes m to path with the codec matching its extension.
func writeTimeline(path string, m *timeline.TimelineModel) error {
	c, err := codec.ForPath(path)
	if err != nil {
		return err
	}
	data, err := codec.Encode[timeline.TimelineData](c, m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, filePermission)
}
