package repository

import (
	"context"
	"errors"
	"log"

	"github.com/tiffin-sathi/checkout-service/internal/cache"
	"github.com/tiffin-sathi/checkout-service/internal/models"
)

var ErrPackageNotFound = errors.New("package not found")

// PackageLister fetches the meal-package catalog from somewhere: the live
// backend, a cached snapshot, or the built-in fallback dataset.
type PackageLister interface {
	ListPackages(ctx context.Context) ([]models.MealPackage, error)
}

// CatalogClient is the slice of the backend client the live repo needs.
type CatalogClient interface {
	ListMealPackages(ctx context.Context) ([]models.MealPackage, error)
}

// LivePackageRepo serves the catalog straight from the upstream backend.
type LivePackageRepo struct {
	client CatalogClient
}

func NewLivePackageRepo(client CatalogClient) *LivePackageRepo {
	return &LivePackageRepo{client: client}
}

func (r *LivePackageRepo) ListPackages(ctx context.Context) ([]models.MealPackage, error) {
	return r.client.ListMealPackages(ctx)
}

// StaticPackageRepo serves the built-in placeholder catalog. It keeps the
// ordering flow usable when the backend is unreachable and nothing has been
// fetched yet.
type StaticPackageRepo struct{}

func NewStaticPackageRepo() *StaticPackageRepo {
	return &StaticPackageRepo{}
}

func (r *StaticPackageRepo) ListPackages(ctx context.Context) ([]models.MealPackage, error) {
	return []models.MealPackage{
		{
			PackageID:    1,
			Name:         "Standard Veg",
			Features:     "Healthy home food",
			PricePerSet:  250,
			DurationDays: 30,
			PackageSets: []models.MealSet{
				{SetID: 1, SetName: "Rice Set", Type: "VEG"},
				{SetID: 2, SetName: "Roti Set", Type: "VEG"},
			},
		},
		{
			PackageID:    2,
			Name:         "Premium Non-Veg",
			Features:     "Includes chicken/mutton",
			PricePerSet:  350,
			DurationDays: 30,
			PackageSets: []models.MealSet{
				{SetID: 3, SetName: "Chicken Thali", Type: "NON_VEG"},
				{SetID: 4, SetName: "Mutton Thali", Type: "NON_VEG"},
			},
		},
	}, nil
}

// ResilientPackageRepo prefers the live catalog, falls back to the last good
// snapshot, and finally to the static dataset. Degraded results are flagged so
// handlers can tell the client.
type ResilientPackageRepo struct {
	live     PackageLister
	fallback PackageLister
	cache    *cache.PackageCache
}

func NewResilientPackageRepo(live, fallback PackageLister) *ResilientPackageRepo {
	return &ResilientPackageRepo{
		live:     live,
		fallback: fallback,
		cache:    cache.NewPackageCache(),
	}
}

// ListPackages returns the catalog and whether it came from a degraded source.
func (r *ResilientPackageRepo) ListPackages(ctx context.Context) ([]models.MealPackage, bool, error) {
	packages, err := r.live.ListPackages(ctx)
	if err == nil {
		r.cache.Set(packages)
		return packages, false, nil
	}
	log.Printf("live package fetch failed, serving degraded catalog: %v", err)

	if cached, ok := r.cache.Get(); ok {
		return cached, true, nil
	}

	packages, fbErr := r.fallback.ListPackages(ctx)
	if fbErr != nil {
		return nil, true, fbErr
	}
	return packages, true, nil
}

// GetPackage resolves a single package by id from whichever catalog source is
// currently available.
func (r *ResilientPackageRepo) GetPackage(ctx context.Context, packageID int) (*models.MealPackage, error) {
	packages, _, err := r.ListPackages(ctx)
	if err != nil {
		return nil, err
	}
	for i := range packages {
		if packages[i].PackageID == packageID {
			return &packages[i], nil
		}
	}
	return nil, ErrPackageNotFound
}
