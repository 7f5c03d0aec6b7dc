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

// Package k8s groups the Kubernetes integration used for ConfigMap-backed
// catalogs.
//
// # Sub-packages
//
// client: shared clientset with kubeconfig discovery
//
//	cs, err := client.GetKubeClient()
//	if err != nil {
//	    return err
//	}
//
// The client resolves its configuration from an explicit path, then
// KUBECONFIG, then ~/.kube/config, and falls back to the in-cluster service
// account. The serializer package uses it to read catalogs from, and apply
// exports to, cm://namespace/name URIs.
package k8s
