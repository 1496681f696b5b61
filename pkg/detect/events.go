package detect

import (
	"sort"
	"strings"
	"time"

	corev1 "k8s.io/api/core/v1"

	"github.com/jdambly/kubectl-hotplug-scan/pkg/types"
)

// maxEventsPerVolume caps how many recent events are attached to one volume
const maxEventsPerVolume = 5

// volumeEvent is a recent downstream event that names a volume
type volumeEvent struct {
	Reason    string
	Message   string
	Object    string
	Namespace string
	Count     int32
	Time      time.Time
}

// EventIndex groups recent attach and mount failure events by the volume they name
type EventIndex struct {
	byVolume map[string][]volumeEvent
}

// NewEventIndex selects events newer than reference minus lookback and indexes them by volume.
// Using the snapshot time as reference keeps repeated analysis of one snapshot identical.
func NewEventIndex(events []corev1.Event, reference time.Time, lookback time.Duration) *EventIndex {
	if lookback == 0 {
		lookback = 1 * time.Hour
	}
	cutoff := reference.Add(-lookback)
	idx := &EventIndex{byVolume: make(map[string][]volumeEvent)}

	for _, event := range events {
		eventTime := event.LastTimestamp.Time
		if eventTime.IsZero() {
			eventTime = event.EventTime.Time
		}
		if eventTime.Before(cutoff) {
			continue
		}
		if !isVolumeFailureEvent(event) {
			continue
		}
		volume := extractVolumeFromMessage(event.Message)
		if volume == "" {
			continue
		}
		idx.byVolume[volume] = append(idx.byVolume[volume], volumeEvent{
			Reason:    event.Reason,
			Message:   event.Message,
			Object:    event.InvolvedObject.Kind + "/" + event.InvolvedObject.Name,
			Namespace: event.Namespace,
			Count:     event.Count,
			Time:      eventTime,
		})
	}

	for volume := range idx.byVolume {
		list := idx.byVolume[volume]
		// newest first, ties broken by object name
		sort.SliceStable(list, func(i, j int) bool {
			if !list[i].Time.Equal(list[j].Time) {
				return list[i].Time.After(list[j].Time)
			}
			return list[i].Object < list[j].Object
		})
		if len(list) > maxEventsPerVolume {
			idx.byVolume[volume] = list[:maxEventsPerVolume]
		}
	}
	return idx
}

// forVolume returns the recent events naming a volume, newest first
func (idx *EventIndex) forVolume(volume string) []volumeEvent {
	if idx == nil {
		return nil
	}
	return idx.byVolume[volume]
}

// correlateEvents attaches recent failure events as informational context
func (a *Analyzer) correlateEvents(report *types.VolumeReport, set *findingSet) {
	for _, event := range a.events.forVolume(report.Volume) {
		set.add(types.SeverityInfo, types.VolumeEvent, types.CheckEvents, "",
			"%s on %s in %s (count %d, last seen %s): %s",
			event.Reason, event.Object, event.Namespace, event.Count,
			event.Time.UTC().Format(time.RFC3339), event.Message)
	}
}

// isVolumeFailureEvent reports whether an event describes an attach or mount failure
func isVolumeFailureEvent(event corev1.Event) bool {
	if strings.Contains(event.Message, "Multi-Attach error") {
		return true
	}
	if event.Type != corev1.EventTypeWarning {
		return false
	}
	return event.Reason == "FailedAttachVolume" || event.Reason == "FailedMount"
}

// extractVolumeFromMessage attempts to extract a volume name from an event message
func extractVolumeFromMessage(message string) string {
	// Look for PVC patterns
	if strings.Contains(message, "pvc-") {
		for _, part := range strings.Fields(message) {
			// Remove quotes and other punctuation
			part = strings.Trim(part, "\"',.()[]:")
			if strings.HasPrefix(part, "pvc-") {
				return part
			}
		}
	}

	// Look for volume handle patterns
	if start := strings.Index(message, "volume \""); start != -1 {
		start += len("volume \"")
		if end := strings.Index(message[start:], "\""); end != -1 {
			return message[start : start+end]
		}
	}

	return ""
}
