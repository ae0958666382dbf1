// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orrery

import "cogentcore.org/orrery/shape"

// ConfigurationError is returned when a body, ring, belt or star
// field cannot be built from its configuration.
type ConfigurationError = shape.ConfigurationError
