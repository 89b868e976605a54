// Package serin is the input-normalization core for single-series
// time-series estimators — transformers, segmenters, anomaly detectors —
// that need one canonical, orientation-safe view of their input.
//
// 🚀 What is serin?
//
//	A small, in-memory library that takes a series in whatever shape a
//	caller has — a plain vector, a 2-D table, a labeled frame — plus an
//	axis declaration saying which dimension is time, and produces the
//	one canonical (nTimepoints × nChannels) container every downstream
//	algorithm reads. Along the way it enforces whether the estimator
//	accepts univariate and/or multivariate data, converts to the
//	estimator's configured inner container, and derives shape metadata.
//
// ✨ Why bother?
//
//   - A silent axis mixup corrupts every subsequent computation without
//     raising an error; orientation handling belongs in exactly one place.
//   - Capability enforcement by channel count, never by container kind.
//   - Pure Go, no hidden runtime deps, every call independent.
//
// Packages:
//
//	series/    — containers: Dense (canonical), Frame (labeled), Input
//	             (tagged raw-input variant), Axis and Kind enumerations
//	normalize/ — the pipeline: classify → reorient → gate → convert,
//	             with functional options and explicit-result metadata
//	estimator/ — embeddable Base holding per-estimator configuration and
//	             the lock-guarded last-call metadata record
//
// Quick start:
//
//	res, err := normalize.Normalize(series.Vector(values))
//	if err != nil { ... }
//	data := res.Data // shape (len(values), 1)
//
//	go get github.com/kalvessen/serin
package serin
