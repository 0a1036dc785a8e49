package instrument

import "testing"

func TestCorrelationIDContext(t *testing.T) {
	t.Run("RoundTrips", func(t *testing.T) {
		ctx := SetCorrelationID(t.Context(), "0199b2c3d4e5")
		if got := GetCorrelationID(ctx); got != "0199b2c3d4e5" {
			t.Fatalf("GetCorrelationID() = %q, want %q", got, "0199b2c3d4e5")
		}
	})

	t.Run("EmptyWhenUnset", func(t *testing.T) {
		if got := GetCorrelationID(t.Context()); got != "" {
			t.Fatalf("GetCorrelationID() = %q, want empty", got)
		}
	})
}
