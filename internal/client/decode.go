package client

import (
	"fmt"
	"sort"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"

	"github.com/neusy/urwerk-client/pkg/urwerk"
)

func asObject(value any) (urwerk.Object, error) {
	object, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected object, got %T", urwerk.ErrUnexpectedType, value)
	}

	return object, nil
}

func asList(value any) ([]any, error) {
	list, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected list, got %T", urwerk.ErrUnexpectedType, value)
	}

	return list, nil
}

func asObjects(value any) ([]urwerk.Object, error) {
	list, err := asList(value)
	if err != nil {
		return nil, err
	}

	objects := make([]urwerk.Object, 0, len(list))

	for _, item := range list {
		object, err := asObject(item)
		if err != nil {
			return nil, err
		}

		objects = append(objects, object)
	}

	return objects, nil
}

// field returns value[key]; value must be an object holding key.
func field(value any, key string) (any, error) {
	object, err := asObject(value)
	if err != nil {
		return nil, err
	}

	item, found := object[key]
	if !found {
		return nil, fmt.Errorf("%w: %q", urwerk.ErrMissingField, key)
	}

	return item, nil
}

func stringField(value any, key string) (string, error) {
	item, err := field(value, key)
	if err != nil {
		return "", err
	}

	s, err := cast.ToStringE(item)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", urwerk.ErrUnexpectedType, key, err)
	}

	return s, nil
}

func objectField(value any, key string) (urwerk.Object, error) {
	item, err := field(value, key)
	if err != nil {
		return nil, err
	}

	return asObject(item)
}

// firstObject returns the first element of a list response.
func firstObject(value any) (urwerk.Object, error) {
	list, err := asList(value)
	if err != nil {
		return nil, err
	}

	if len(list) == 0 {
		return nil, fmt.Errorf("%w: empty list", urwerk.ErrMissingField)
	}

	return asObject(list[0])
}

// decode converts a decoded JSON value into T using mapstructure tags.
func decode[T any](input any) (T, error) {
	var out T

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &out,
		TagName:          "mapstructure",
	})
	if err != nil {
		return out, fmt.Errorf("creating decoder: %w", err)
	}

	err = decoder.Decode(input)
	if err != nil {
		return out, fmt.Errorf("%w: %w", urwerk.ErrUnexpectedType, err)
	}

	return out, nil
}

func decodeField[T any](value any, key string) (T, error) {
	item, err := field(value, key)
	if err != nil {
		var zero T

		return zero, err
	}

	return decode[T](item)
}

// sortByKey orders objects by the string form of key.
func sortByKey(objects []urwerk.Object, key string) {
	sort.SliceStable(objects, func(i, j int) bool {
		return cast.ToString(objects[i][key]) < cast.ToString(objects[j][key])
	})
}

// withProfile copies data and adds profile_id when set. It returns nil
// instead of an empty object so no body is sent.
func withProfile(data urwerk.Object, profileID string) any {
	body := make(urwerk.Object, len(data)+1)
	for key, value := range data {
		body[key] = value
	}

	if profileID != "" {
		body["profile_id"] = profileID
	}

	if len(body) == 0 {
		return nil
	}

	return body
}

func profileParams(profileID string) urwerk.Params {
	if profileID == "" {
		return nil
	}

	return urwerk.Params{"profile_id": profileID}
}

func profileOrCurrent(profileID string) string {
	if profileID == "" {
		return urwerk.CurrentProfile
	}

	return profileID
}

// optionalBody converts an empty object to no body.
func optionalBody(data urwerk.Object) any {
	if len(data) == 0 {
		return nil
	}

	return data
}
