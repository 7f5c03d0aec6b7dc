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

package serializer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/NVIDIA/cookbook/pkg/defaults"
	"github.com/NVIDIA/cookbook/pkg/header"
	"github.com/NVIDIA/cookbook/pkg/k8s/client"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"
)

const (
	// configMapDataPrefix names the data key holding the document: catalog.<ext>.
	configMapDataPrefix = "catalog"
	fieldManager        = "cookbook"
)

// ConfigMapOption configures a ConfigMapWriter.
type ConfigMapOption func(*ConfigMapWriter)

// WithKubeClient injects the clientset used for the apply.
func WithKubeClient(cs client.Interface) ConfigMapOption {
	return func(w *ConfigMapWriter) {
		w.client = cs
	}
}

// ConfigMapWriter stores a serialized document in a ConfigMap using
// server-side apply.
type ConfigMapWriter struct {
	namespace string
	name      string
	format    Format
	client    client.Interface
}

// NewConfigMapWriter targets namespace/name. Without WithKubeClient the
// process-wide client is used.
func NewConfigMapWriter(namespace, name string, format Format, opts ...ConfigMapOption) *ConfigMapWriter {
	w := &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    orDefault(format),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Serialize encodes v and applies it to the ConfigMap. Kind, version and
// timestamp labels come from v's header when it carries one.
func (w *ConfigMapWriter) Serialize(ctx context.Context, v any) error {
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	cs := w.client
	if cs == nil {
		var err error
		if cs, err = client.GetKubeClient(); err != nil {
			return fmt.Errorf("failed to get kubernetes client: %w", err)
		}
	}

	content, err := encode(w.format, v)
	if err != nil {
		return err
	}

	kind, version, timestamp := header.KindCatalog.String(), "unknown", time.Now().UTC().Format(time.RFC3339)
	if h, ok := v.(interface {
		GetKind() header.Kind
		GetMetadata() map[string]string
	}); ok {
		if k := h.GetKind(); k != "" {
			kind = k.String()
		}
		md := h.GetMetadata()
		if s := md["version"]; s != "" {
			version = s
		}
		if s := md["timestamp"]; s != "" {
			timestamp = s
		}
	}

	cm := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/name":      "cookbook",
			"app.kubernetes.io/component": strings.ToLower(kind),
			"app.kubernetes.io/version":   version,
		}).
		WithData(map[string]string{
			configMapDataPrefix + "." + w.format.extension(): string(content),
			"format":    string(w.format),
			"timestamp": timestamp,
		})

	slog.Info("applying configmap",
		"namespace", w.namespace,
		"name", w.name,
		"format", w.format,
		"size", len(content))

	_, err = cs.CoreV1().ConfigMaps(w.namespace).Apply(writeCtx, cm, metav1.ApplyOptions{
		FieldManager: fieldManager,
		Force:        true,
	})
	if err != nil {
		return fmt.Errorf("failed to apply ConfigMap %s/%s: %w", w.namespace, w.name, err)
	}
	return nil
}

// Close is a no-op.
func (w *ConfigMapWriter) Close() error {
	return nil
}

// FromConfigMap decodes T from the catalog.<ext> key of namespace/name.
// The "format" key selects the entry; otherwise yaml then json are tried.
func FromConfigMap[T any](ctx context.Context, cs client.Interface, namespace, name string) (*T, error) {
	readCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapReadTimeout)
	defer cancel()

	cm, err := cs.CoreV1().ConfigMaps(namespace).Get(readCtx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}

	candidates := []Format{FormatYAML, FormatJSON}
	if f := Format(cm.Data["format"]); f == FormatJSON || f == FormatYAML {
		candidates = append([]Format{f}, candidates...)
	}

	for _, format := range candidates {
		content, ok := cm.Data[configMapDataPrefix+"."+format.extension()]
		if !ok {
			continue
		}

		slog.Debug("reading from configmap",
			"namespace", namespace,
			"name", name,
			"format", format,
			"size", len(content))

		r, err := NewReader(format, strings.NewReader(content))
		if err != nil {
			return nil, err
		}
		var out T
		if err := r.Deserialize(&out); err != nil {
			return nil, fmt.Errorf("failed to deserialize ConfigMap %s/%s: %w", namespace, name, err)
		}
		return &out, nil
	}

	return nil, fmt.Errorf("ConfigMap %s/%s has no %s data", namespace, name, configMapDataPrefix)
}

func kubeClient(kubeconfig string) (client.Interface, error) {
	var (
		cs  client.Interface
		err error
	)
	if kubeconfig != "" {
		cs, err = client.GetKubeClientWithConfig(kubeconfig)
	} else {
		cs, err = client.GetKubeClient()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kubernetes client: %w", err)
	}
	return cs, nil
}

// parseConfigMapURI splits cm://namespace/name.
func parseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	namespace, name, found := strings.Cut(strings.TrimPrefix(uri, ConfigMapURIScheme), "/")
	if !found {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(namespace)
	name = strings.TrimSpace(name)
	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}
	return namespace, name, nil
}
