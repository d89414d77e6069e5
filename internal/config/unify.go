package config

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/BurntSushi/toml"
)

func (sweepConfig *SweepParameters) toSI(parameterNames, units []string) {
	sweepConfigReflect := reflect.ValueOf(sweepConfig).Elem()
	for _, name := range parameterNames {
		field := sweepConfigReflect.FieldByName(name)
		if _, dimensional := valueUnits[name]; dimensional && field.CanFloat() {
			field.SetFloat(SI(field.Float(), valueUnits[name], units, true))
		}
	}
}

func (sweepConfig *SweepParameters) checkFieldProblems(path []string, meta *toml.MetaData, globalConfig *Config) (ambiguities [][]string, missingDeps []string) {
	sweepConfigReflect := reflect.ValueOf(sweepConfig).Elem()
	at := func(field string) []string {
		return append(slices.Clone(path), field)
	}
	for field := range fieldsXor {
		if globalConfig.isDefined(at(field), meta) {
			if sweepConfigReflect.FieldByName(field).Kind() == reflect.Bool && !sweepConfigReflect.FieldByName(field).Bool() {
				continue
			}
			var foundAlternatives []string
			for _, alternative := range fieldsXor[field] {
				if globalConfig.isDefined(at(alternative), meta) {
					foundAlternatives = append(foundAlternatives, alternative)
				}
			}
			if len(foundAlternatives) > 0 {
				ambiguities = append(ambiguities, append([]string{field}, foundAlternatives...))
			}
		}
	}

	for field := range fieldsAnd {
		if globalConfig.isDefined(at(field), meta) {
			for _, requirement := range fieldsAnd[field] {
				if !globalConfig.isDefined(at(requirement), meta) {
					missingDeps = append(missingDeps, requirement)
				}
			}
		}
	}
	return
}

/*
the algorithm:
0. preload into global and local
1. check problems in global
2. check problems in local
3. check combined
4. for local make list of exclusions from possible global & default
5. load missing from global
6. convert loaded values to SI
7. load missing from defaults
8. calculate calculables
9. check final missing and conflicts

field value priority:
1. local
2. local-calculable
3. global
4. global-calculable
5. default
*/

// CheckAndUnify fills sweepConfig with the sweep's own values, then global ones,
// then defaults, and converts everything into SI.
func (sweepConfig *SweepParameters) CheckAndUnify(sweepName string, config *Config, meta *toml.MetaData) error {
	localPath := []string{"Sweeps", sweepName}
	globalAmbiguities, globalMissingDeps := config.checkFieldProblems([]string{}, meta, config)
	localAmbiguities, localMissingDeps := sweepConfig.checkFieldProblems(localPath, meta, config)
	if len(globalAmbiguities) > 0 {
		return fmt.Errorf("%w: found global ambiguities %v", ErrConfig, globalAmbiguities)
	}
	if len(localAmbiguities) > 0 {
		return fmt.Errorf("%w: found ambiguities in sweep %s: %v", ErrConfig, sweepName, localAmbiguities)
	}
	var missingIntersection []string
	for _, dep := range globalMissingDeps {
		if slices.Contains(localMissingDeps, dep) {
			missingIntersection = append(missingIntersection, dep)
		}
	}
	if len(missingIntersection) > 0 {
		return fmt.Errorf("%w: required dependent fields not found in sweep %s: %v", ErrConfig, sweepName, missingIntersection)
	}

	var discoveredParameters []string

	excludeFromLoadingDefaultOrOuter := make(map[string]struct{})
	sweepConfigReflect := reflect.ValueOf(sweepConfig).Elem()
	sweepConfigType := sweepConfigReflect.Type()
	for i := range sweepConfigReflect.NumField() {
		fieldName := sweepConfigType.Field(i).Name
		if config.isDefined(append(slices.Clone(localPath), fieldName), meta) {
			discoveredParameters = append(discoveredParameters, fieldName)
			for _, x := range fieldsXor[fieldName] {
				excludeFromLoadingDefaultOrOuter[x] = struct{}{}
			}
			for _, x := range fieldsDerivable[fieldName] {
				excludeFromLoadingDefaultOrOuter[x] = struct{}{}
			}
		}
	}

	globalConfigReflect := reflect.ValueOf(&config.SweepParameters).Elem()
	globalConfigType := globalConfigReflect.Type()
	for i := range globalConfigReflect.NumField() {
		fieldName := globalConfigType.Field(i).Name
		if !globalConfigType.Field(i).IsExported() {
			continue
		}
		if _, some := excludeFromLoadingDefaultOrOuter[fieldName]; !some && !slices.Contains(discoveredParameters, fieldName) && config.isDefined([]string{fieldName}, meta) {
			sweepConfigReflect.FieldByName(fieldName).Set(globalConfigReflect.Field(i))
			discoveredParameters = append(discoveredParameters, fieldName)
			excludeFromLoadingDefaultOrOuter[fieldName] = struct{}{}
			for _, xAlternative := range fieldsXor[fieldName] {
				excludeFromLoadingDefaultOrOuter[xAlternative] = struct{}{}
			}
			for _, derived := range fieldsDerivable[fieldName] {
				excludeFromLoadingDefaultOrOuter[derived] = struct{}{}
			}
		}
	}

	sweepConfig.toSI(discoveredParameters, config.InputUnits)

	for fieldName, value := range defaultValues {
		if _, x := excludeFromLoadingDefaultOrOuter[fieldName]; !x && !slices.Contains(discoveredParameters, fieldName) {
			sweepConfigReflect.FieldByName(fieldName).Set(reflect.ValueOf(value))
			discoveredParameters = append(discoveredParameters, fieldName)
		}
	}

	var enabledParameters []string
	for _, fieldName := range discoveredParameters {
		field := sweepConfigReflect.FieldByName(fieldName)
		if field.Kind() != reflect.Bool || field.Bool() {
			enabledParameters = append(enabledParameters, fieldName)
		}
	}

	calculatedAnything := true
	for calculatedAnything {
		calculatedAnything = false
		for initialFieldName, calculate := range calculableFields {
			if slices.Contains(enabledParameters, initialFieldName) {
				calculated := calculate(sweepConfig, enabledParameters)
				if len(calculated) != 0 {
					calculatedAnything = true
					enabledParameters = append(enabledParameters, calculated...)
					enabledParameters = slices.DeleteFunc(enabledParameters, func(elem string) bool {
						return elem == initialFieldName
					})
				}
			}
		}
	}

	var problems []error
	for _, name := range enabledParameters {
		for _, requirement := range fieldsAnd[name] {
			if !slices.Contains(enabledParameters, requirement) {
				problems = append(problems, fmt.Errorf("for parameter %s requirement %s not found", name, requirement))
			}
		}
		for _, conflict := range fieldsXor[name] {
			if slices.Contains(enabledParameters, conflict) {
				problems = append(problems, fmt.Errorf("for parameter %s found conflicting parameter: %s", name, conflict))
			}
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: sweep %s: %w", ErrConfig, sweepName, errors.Join(problems...))
	}

	units, conflict := checkUnits(config.OutputUnits)
	if len(conflict) > 0 {
		sweepConfig._outputUnits = config.InputUnits
	} else {
		sweepConfig._outputUnits = units
	}
	return nil
}

// Unified runs CheckAndUnify for every sweep and returns the results by name.
func (config *Config) Unified(meta *toml.MetaData, verbose bool, threads int) (map[string]SweepParameters, error) {
	out := make(map[string]SweepParameters, len(config.Sweeps))
	var problems []error
	for name, sp := range config.Sweeps {
		if err := sp.CheckAndUnify(name, config, meta); err != nil {
			problems = append(problems, err)
			continue
		}
		sp.SetVerbosity(verbose)
		sp.SetThreads(threads)
		out[name] = sp
	}
	return out, errors.Join(problems...)
}
