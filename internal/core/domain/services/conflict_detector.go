package services

import (
	"context"
	"fmt"

	"workorders/internal/core/domain/model/asset"
	"workorders/internal/core/domain/model/kernel"
)

// AssetRegistry supplies the protected assets to screen against, in a stable order.
type AssetRegistry interface {
	Assets() []*asset.ProtectedAsset
}

// Notifier informs the owner of a protected asset about a conflict.
// Implementations must not fail the caller: delivery problems are theirs to handle.
type Notifier interface {
	Notify(ctx context.Context, recipient, reason string)
}

// Conflict describes one protected asset whose safety zone overlaps a dig site.
type Conflict struct {
	Asset          *asset.ProtectedAsset
	DistanceMeters float64
	Reason         string
}

// ConflictDetector screens a proposed dig site against the protected asset registry.
//
// Overlap is the open inequality distance < siteRadius + safetyBuffer: circles
// that only touch do not conflict.
//
// Example usage:
//
//	detector := services.NewConflictDetector(registry, notifier)
//	conflict, err := detector.CheckConflicts(ctx, site)
//	if conflict != nil {
//	    // conflict.Reason goes on the work order
//	}
type ConflictDetector struct {
	registry AssetRegistry
	notifier Notifier
}

// NewConflictDetector builds a detector. A nil notifier disables notifications.
func NewConflictDetector(registry AssetRegistry, notifier Notifier) *ConflictDetector {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &ConflictDetector{
		registry: registry,
		notifier: notifier,
	}
}

// CheckConflicts returns the first conflicting asset in registry order, or nil
// when the site is clear. When a conflict is found the asset owner is notified
// exactly once with the conflict reason.
func (d *ConflictDetector) CheckConflicts(ctx context.Context, site kernel.Zone) (*Conflict, error) {
	conflicts, err := d.scan(site, true)
	if err != nil || len(conflicts) == 0 {
		return nil, err
	}

	first := conflicts[0]
	d.notifier.Notify(ctx, first.Asset.Owner(), first.Reason)

	return &first, nil
}

// FindConflicts returns every conflicting asset in registry order. It has no
// side effects and sends no notifications.
func (d *ConflictDetector) FindConflicts(_ context.Context, site kernel.Zone) ([]Conflict, error) {
	return d.scan(site, false)
}

func (d *ConflictDetector) scan(site kernel.Zone, firstOnly bool) ([]Conflict, error) {
	if err := site.Validate(); err != nil {
		return nil, err
	}
	if d.registry == nil {
		return nil, nil
	}

	var conflicts []Conflict
	for _, a := range d.registry.Assets() {
		if err := a.Validate(); err != nil {
			return nil, err
		}

		overlaps, distance, err := site.Overlaps(a.SafetyZone())
		if err != nil {
			return nil, err
		}
		if !overlaps {
			continue
		}

		conflicts = append(conflicts, Conflict{
			Asset:          a,
			DistanceMeters: distance,
			Reason:         ConflictReason(a),
		})
		if firstOnly {
			break
		}
	}

	return conflicts, nil
}

// ConflictReason formats the reason stored on a work order that overlaps a.
func ConflictReason(a *asset.ProtectedAsset) string {
	return fmt.Sprintf("CRITICAL CONFLICT: Overlaps with %s (ID: %s).", a.Name(), a.ID())
}

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, string, string) {}
