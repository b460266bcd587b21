// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers that update autodiff parameters in place.
//
// Example:
//
//	params := model.Parameters()
//	opt := optim.NewSGD(params, optim.SGDConfig{LR: 0.01, Momentum: 0.9})
//
//	for step := range steps {
//	    loss := buildLoss(g)
//	    opt.ZeroGrad()
//	    loss.Backward()
//	    opt.Step()
//	    g.Release(mark)
//	}
package optim

import (
	"github.com/born-ml/micrograd/autodiff"
	"github.com/born-ml/micrograd/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config represents the base configuration for optimizers.
type Config = optim.Config

// ErrStateMismatch is returned when restored optimizer state does not fit the parameters.
var ErrStateMismatch = optim.ErrStateMismatch

// SGD represents the SGD optimizer with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
func NewSGD(params []autodiff.Value, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
func NewAdam(params []autodiff.Value, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}

// Gradients returns the current gradient of each parameter.
func Gradients(params []autodiff.Value) []float64 {
	return optim.Gradients(params)
}
