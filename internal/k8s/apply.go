package k8s

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/apimachinery/pkg/util/yaml"
)

// ApplyManifests applies multi-document YAML using Server-Side Apply.
// Each document is parsed and applied separately; empty documents are
// skipped. The returned slice holds one "Kind namespace/name" summary per
// applied object, in apply order.
func (c *client) ApplyManifests(ctx context.Context, manifests []byte, fieldManager string) ([]string, error) {
	decoder := yaml.NewYAMLOrJSONDecoder(bytes.NewReader(manifests), 4096)

	var applied []string
	docIndex := 0
	for {
		var obj unstructured.Unstructured
		if err := decoder.Decode(&obj); err != nil {
			if err == io.EOF {
				break
			}
			return applied, fmt.Errorf("failed to decode manifest document %d: %w", docIndex, err)
		}

		// Empty documents are common in multi-doc YAML
		if len(obj.Object) == 0 {
			docIndex++
			continue
		}

		summary, err := c.applyObject(ctx, &obj, fieldManager)
		if err != nil {
			return applied, fmt.Errorf("failed to apply %s %s/%s: %w",
				obj.GetKind(), obj.GetNamespace(), obj.GetName(), err)
		}
		applied = append(applied, summary)

		docIndex++
	}

	return applied, nil
}

// applyObject applies a single unstructured object using Server-Side Apply
// and returns its summary line.
func (c *client) applyObject(ctx context.Context, obj *unstructured.Unstructured, fieldManager string) (string, error) {
	gvk := obj.GroupVersionKind()
	if gvk.Kind == "" {
		return "", fmt.Errorf("object has no kind set")
	}

	mapping, err := c.mapper.RESTMapping(gvk.GroupKind(), gvk.Version)
	if err != nil {
		return "", fmt.Errorf("failed to get REST mapping for %v: %w", gvk, err)
	}

	namespaced := mapping.Scope.Name() == meta.RESTScopeNameNamespace
	namespace := obj.GetNamespace()
	if namespaced && namespace == "" {
		namespace = "default"
	}

	data, err := obj.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("failed to marshal object to JSON: %w", err)
	}

	opts := metav1.PatchOptions{FieldManager: fieldManager}
	resource := c.dynamicClient.Resource(mapping.Resource)

	if namespaced {
		_, err = resource.Namespace(namespace).Patch(ctx, obj.GetName(), types.ApplyPatchType, data, opts)
	} else {
		_, err = resource.Patch(ctx, obj.GetName(), types.ApplyPatchType, data, opts)
	}
	if err != nil {
		return "", fmt.Errorf("server-side apply failed: %w", err)
	}

	if namespaced {
		return fmt.Sprintf("%s %s/%s", gvk.Kind, namespace, obj.GetName()), nil
	}
	return fmt.Sprintf("%s %s", gvk.Kind, obj.GetName()), nil
}
