package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateWorkout(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		want   FieldErrors
	}{
		{
			name:   "valid",
			values: map[string]string{FieldExerciseName: "Squat", FieldSets: "3", FieldReps: "10"},
			want:   FieldErrors{},
		},
		{
			name:   "all empty",
			values: map[string]string{},
			want: FieldErrors{
				FieldExerciseName: "Exercise name is required!",
				FieldSets:         "please input how many sets you did!",
				FieldReps:         "please input how many reps you did!",
			},
		},
		{
			name:   "blank name",
			values: map[string]string{FieldExerciseName: "   ", FieldSets: "3", FieldReps: "10"},
			want:   FieldErrors{FieldExerciseName: "Exercise name is required!"},
		},
		{
			name:   "non numeric sets",
			values: map[string]string{FieldExerciseName: "Squat", FieldSets: "three", FieldReps: "10"},
			want:   FieldErrors{FieldSets: "sets must be a whole number greater than 0"},
		},
		{
			name:   "fractional values read their integer part",
			values: map[string]string{FieldExerciseName: "Squat", FieldSets: "3.5", FieldReps: "2.5"},
			want:   FieldErrors{},
		},
		{
			name:   "fraction below one",
			values: map[string]string{FieldExerciseName: "Squat", FieldSets: "0.5", FieldReps: ".5"},
			want: FieldErrors{
				FieldSets: "sets must be a whole number greater than 0",
				FieldReps: "reps must be a whole number greater than 0",
			},
		},
		{
			name:   "zero and negative",
			values: map[string]string{FieldExerciseName: "Squat", FieldSets: "0", FieldReps: "-4"},
			want: FieldErrors{
				FieldSets: "sets must be a whole number greater than 0",
				FieldReps: "reps must be a whole number greater than 0",
			},
		},
		{
			name:   "surrounding spaces are accepted",
			values: map[string]string{FieldExerciseName: " Squat ", FieldSets: " 3 ", FieldReps: "10 "},
			want:   FieldErrors{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateWorkout(tt.values))
		})
	}
}

func TestValidateLogin(t *testing.T) {
	t.Run("any non-empty values pass", func(t *testing.T) {
		errs := ValidateLogin(map[string]string{FieldEmail: "not-an-email", FieldPassword: "x"})
		assert.True(t, errs.Valid())
	})

	t.Run("empty email", func(t *testing.T) {
		errs := ValidateLogin(map[string]string{FieldPassword: "x"})
		assert.Equal(t, FieldErrors{FieldEmail: "email is required!"}, errs)
	})

	t.Run("both empty", func(t *testing.T) {
		errs := ValidateLogin(map[string]string{})
		assert.Equal(t, "email is required!", errs[FieldEmail])
		assert.Equal(t, "password is required!", errs[FieldPassword])
	})

	t.Run("shape check when enabled", func(t *testing.T) {
		errs := ValidateLoginWithEmailShape(map[string]string{FieldEmail: "not-an-email", FieldPassword: "x"})
		assert.Equal(t, FieldErrors{FieldEmail: "please enter a valid email address!"}, errs)

		errs = ValidateLoginWithEmailShape(map[string]string{FieldEmail: "a@b.com", FieldPassword: "x"})
		assert.True(t, errs.Valid())
	})
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"3", 3, true},
		{"  42", 42, true},
		{"3.5", 3, true},
		{"12 reps", 12, true},
		{"+7", 7, true},
		{"-4", -4, true},
		{"0", 0, true},
		{"", 0, false},
		{"ten", 0, false},
		{".5", 0, false},
		{"-", 0, false},
		{"99999999999999999999", 0, false},
	}
	for _, tt := range tests {
		n, err := LeadingInt(tt.in)
		if !tt.ok {
			assert.Error(t, err, tt.in)
			continue
		}
		if assert.NoError(t, err, tt.in) {
			assert.Equal(t, tt.want, n, tt.in)
		}
	}
}

func TestIsEmailShape(t *testing.T) {
	assert.True(t, IsEmailShape("a@b.com"))
	assert.False(t, IsEmailShape("a@b"))
	assert.False(t, IsEmailShape("a b@c.com"))
	assert.False(t, IsEmailShape("@b.com"))
}

func TestGuardRegistration(t *testing.T) {
	complete := map[string]string{
		FieldLastName:  "Doe",
		FieldFirstName: "Jane",
		FieldAge:       "30",
		FieldEmail:     "jane@example.com",
		FieldPassword:  "secret",
		FieldTerms:     "on",
	}

	t.Run("complete", func(t *testing.T) {
		assert.True(t, GuardRegistration(complete).Valid())
	})

	for _, field := range []string{FieldLastName, FieldFirstName, FieldAge, FieldEmail, FieldPassword, FieldTerms} {
		t.Run("missing "+field, func(t *testing.T) {
			values := map[string]string{}
			for k, v := range complete {
				values[k] = v
			}
			delete(values, field)

			errs := GuardRegistration(values)
			assert.Equal(t, FieldErrors{FormKey: RegistrationIncompleteMessage}, errs)
		})
	}
}

func TestChecked(t *testing.T) {
	for _, v := range []string{"on", "true", "YES", "1"} {
		assert.True(t, Checked(v), v)
	}
	for _, v := range []string{"", "off", "false", "0"} {
		assert.False(t, Checked(v), v)
	}
}

func TestFieldErrorsClone(t *testing.T) {
	errs := FieldErrors{FieldSets: "bad"}
	clone := errs.Clone()
	clone[FieldReps] = "also bad"

	assert.False(t, errs.Has(FieldReps))
	assert.True(t, clone.Has(FieldSets))
}
