// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package client builds Kubernetes clients for reading and writing catalog
// ConfigMaps (cm://namespace/name URIs).
//
// Configuration is discovered in order:
//
//  1. An explicit kubeconfig path
//  2. The KUBECONFIG environment variable
//  3. ~/.kube/config, when present
//  4. The in-cluster service account
//
// GetKubeClient caches the client for the process lifetime; use
// GetKubeClientWithConfig for a specific kubeconfig.
//
//	cs, err := client.GetKubeClient()
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//	cm, err := cs.CoreV1().ConfigMaps("kitchen").Get(ctx, "catalog", metav1.GetOptions{})
package client
