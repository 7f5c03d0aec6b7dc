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
	"testing"

	"github.com/NVIDIA/cookbook/pkg/header"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

type headed struct {
	header.Header `json:",inline" yaml:",inline"`
	Name          string `json:"name" yaml:"name"`
}

func TestParseConfigMapURI(t *testing.T) {
	tests := []struct {
		name          string
		uri           string
		wantNamespace string
		wantName      string
		wantErr       bool
	}{
		{name: "valid", uri: "cm://kitchen/catalog", wantNamespace: "kitchen", wantName: "catalog"},
		{name: "spaces trimmed", uri: "cm://kitchen / catalog ", wantNamespace: "kitchen", wantName: "catalog"},
		{name: "missing scheme", uri: "kitchen/catalog", wantErr: true},
		{name: "wrong scheme", uri: "http://kitchen/catalog", wantErr: true},
		{name: "missing name", uri: "cm://kitchen/", wantErr: true},
		{name: "missing namespace", uri: "cm:///catalog", wantErr: true},
		{name: "missing separator", uri: "cm://kitchen", wantErr: true},
		{name: "only scheme", uri: "cm://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			namespace, name, err := parseConfigMapURI(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNamespace, namespace)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestConfigMapWriter_Serialize(t *testing.T) {
	cs := fake.NewClientset()
	ctx := context.Background()

	doc := headed{Name: "Omelette"}
	doc.Init(header.KindCatalog, header.APIVersionV1Alpha1, "v1.2.3")

	w := NewConfigMapWriter("kitchen", "catalog", FormatYAML, WithKubeClient(cs))
	require.NoError(t, w.Serialize(ctx, &doc))
	require.NoError(t, w.Close())

	cm, err := cs.CoreV1().ConfigMaps("kitchen").Get(ctx, "catalog", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "yaml", cm.Data["format"])
	assert.Contains(t, cm.Data["catalog.yaml"], "name: Omelette")
	assert.Equal(t, "cookbook", cm.Labels["app.kubernetes.io/name"])
	assert.Equal(t, "catalog", cm.Labels["app.kubernetes.io/component"])
	assert.Equal(t, "v1.2.3", cm.Labels["app.kubernetes.io/version"])
}

func TestFromConfigMap(t *testing.T) {
	ctx := context.Background()
	cs := fake.NewClientset(
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "json-catalog", Namespace: "kitchen"},
			Data: map[string]string{
				"format":       "json",
				"catalog.json": `{"name":"Brunch","cookTime":33}`,
			},
		},
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "no-format", Namespace: "kitchen"},
			Data:       map[string]string{"catalog.yaml": "name: Toast\n"},
		},
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "empty", Namespace: "kitchen"},
			Data:       map[string]string{"other": "x"},
		},
	)

	got, err := FromConfigMap[sample](ctx, cs, "kitchen", "json-catalog")
	require.NoError(t, err)
	assert.Equal(t, "Brunch", got.Name)
	assert.Equal(t, 33, got.CookTime)

	got, err = FromConfigMap[sample](ctx, cs, "kitchen", "no-format")
	require.NoError(t, err)
	assert.Equal(t, "Toast", got.Name)

	_, err = FromConfigMap[sample](ctx, cs, "kitchen", "empty")
	assert.Error(t, err)

	_, err = FromConfigMap[sample](ctx, cs, "kitchen", "missing")
	assert.Error(t, err)
}
