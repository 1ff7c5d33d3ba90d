package respond

import (
	"errors"
	"testing"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "plain error untouched",
			err:  errors.New("article not found"),
			want: "article not found",
		},
		{
			name: "dsn password masked",
			err:  errors.New(`dial error: postgres://press:s3cr3t@db:5432/pressroom`),
			want: `dial error: postgres://press:****@db:5432/pressroom`,
		},
		{
			name: "libpq password masked",
			err:  errors.New(`connect: host=db user=press password=s3cr3t dbname=pressroom`),
			want: `connect: host=db user=press password=**** dbname=pressroom`,
		},
		{
			name: "libpq password masked case insensitive",
			err:  errors.New(`connect: PASSWORD=s3cr3t`),
			want: `connect: PASSWORD=****`,
		},
		{
			name: "jwt masked",
			err:  errors.New("parse token eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJhIn0.abc-_123: invalid"),
			want: "parse token ****.****.****: invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeError(tt.err)
			if got != tt.want {
				t.Errorf("SanitizeError() = %q, want %q", got, tt.want)
			}
		})
	}
}
