package routing

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

var ErrInvalidDistance = errors.New("routing service returned invalid distance")

func toRequest(pickupLocation, deliveryLocation string) (*structpb.Struct, error) {
	req, err := structpb.NewStruct(map[string]any{
		"pickup":   pickupLocation,
		"delivery": deliveryLocation,
	})
	if err != nil {
		return nil, fmt.Errorf("build routing request: %w", err)
	}
	return req, nil
}

func fromResponse(resp *wrapperspb.DoubleValue) (float64, error) {
	if resp == nil {
		return 0, ErrInvalidDistance
	}

	km := resp.GetValue()
	if math.IsNaN(km) || math.IsInf(km, 0) || km < 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDistance, km)
	}
	return km, nil
}
