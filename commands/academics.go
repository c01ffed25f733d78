package commands

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/chrom13/schoolmanager-web/academics"
)

func parseID(args []string) (int, error) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.Wrapf(err, "invalid id %q", args[0])
	}
	return id, nil
}

func levelsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "niveles",
		Short: "Manage educational levels",
	}
	routed(cmd, "/niveles")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			levels, err := app.Levels.List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(levels)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Args:  cobra.ExactArgs(1),
		Short: "Show one level",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}
			level, err := app.Levels.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(level)
		},
	})

	var createName string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a level",
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := app.Levels.Create(cmd.Context(), academics.CreateLevel{Name: academics.LevelName(createName)})
			if err != nil {
				return err
			}
			return printJSON(level)
		},
	}
	create.Flags().StringVar(&createName, "name", "", "preescolar|primaria|secundaria|preparatoria")
	_ = create.MarkFlagRequired("name")
	cmd.AddCommand(create)

	var (
		updateName   string
		updateActive bool
	)
	update := &cobra.Command{
		Use:   "update <id>",
		Args:  cobra.ExactArgs(1),
		Short: "Update a level",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}
			var input academics.UpdateLevel
			if cmd.Flags().Changed("name") {
				name := academics.LevelName(updateName)
				input.Name = &name
			}
			if cmd.Flags().Changed("active") {
				input.Active = &updateActive
			}
			level, err := app.Levels.Update(cmd.Context(), id, input)
			if err != nil {
				return err
			}
			return printJSON(level)
		},
	}
	update.Flags().StringVar(&updateName, "name", "", "new name")
	update.Flags().BoolVar(&updateActive, "active", true, "active flag")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Args:  cobra.ExactArgs(1),
		Short: "Delete a level",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}
			return app.Levels.Delete(cmd.Context(), id)
		},
	})
	return cmd
}

func gradesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grados",
		Short: "Manage grades",
	}
	routed(cmd, "/grados")

	var listLevelID int
	list := &cobra.Command{
		Use:   "list",
		Short: "List grades, optionally for one level",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("nivel") {
				grades, err := app.Grades.ListByLevel(cmd.Context(), listLevelID)
				if err != nil {
					return err
				}
				return printJSON(grades)
			}
			grades, err := app.Grades.List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(grades)
		},
	}
	list.Flags().IntVar(&listLevelID, "nivel", 0, "filter by level id")
	cmd.AddCommand(list)

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Args:  cobra.ExactArgs(1),
		Short: "Show one grade",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}
			grade, err := app.Grades.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(grade)
		},
	})

	var create academics.CreateGrade
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a grade",
		RunE: func(cmd *cobra.Command, args []string) error {
			grade, err := app.Grades.Create(cmd.Context(), create)
			if err != nil {
				return err
			}
			return printJSON(grade)
		},
	}
	createCmd.Flags().IntVar(&create.LevelID, "nivel", 0, "level id")
	createCmd.Flags().StringVar(&create.Name, "name", "", "grade name")
	createCmd.Flags().IntVar(&create.Orden, "orden", 0, "sort order")
	cmd.AddCommand(createCmd)

	var (
		updateName  string
		updateOrden int
	)
	update := &cobra.Command{
		Use:   "update <id>",
		Args:  cobra.ExactArgs(1),
		Short: "Update a grade",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}
			var input academics.UpdateGrade
			if cmd.Flags().Changed("name") {
				input.Name = &updateName
			}
			if cmd.Flags().Changed("orden") {
				input.Orden = &updateOrden
			}
			grade, err := app.Grades.Update(cmd.Context(), id, input)
			if err != nil {
				return err
			}
			return printJSON(grade)
		},
	}
	update.Flags().StringVar(&updateName, "name", "", "new name")
	update.Flags().IntVar(&updateOrden, "orden", 0, "new sort order")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Args:  cobra.ExactArgs(1),
		Short: "Delete a grade",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}
			return app.Grades.Delete(cmd.Context(), id)
		},
	})
	return cmd
}

func groupsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grupos",
		Short: "Manage class groups",
	}
	routed(cmd, "/grupos")

	var listGradeID int
	list := &cobra.Command{
		Use:   "list",
		Short: "List groups, optionally for one grade",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("grado") {
				groups, err := app.Groups.ListByGrade(cmd.Context(), listGradeID)
				if err != nil {
					return err
				}
				return printJSON(groups)
			}
			groups, err := app.Groups.List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(groups)
		},
	}
	list.Flags().IntVar(&listGradeID, "grado", 0, "filter by grade id")
	cmd.AddCommand(list)

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Args:  cobra.ExactArgs(1),
		Short: "Show one group",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}
			group, err := app.Groups.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(group)
		},
	})

	var create academics.CreateGroup
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a group",
		RunE: func(cmd *cobra.Command, args []string) error {
			group, err := app.Groups.Create(cmd.Context(), create)
			if err != nil {
				return err
			}
			return printJSON(group)
		},
	}
	createCmd.Flags().IntVar(&create.GradeID, "grado", 0, "grade id")
	createCmd.Flags().StringVar(&create.Name, "name", "", "group name")
	createCmd.Flags().IntVar(&create.Capacity, "capacity", 0, "maximum capacity")
	cmd.AddCommand(createCmd)

	var (
		updateGradeID   int
		updateName      string
		updateCapacity  int
		updateTeacherID int
		updateActive    bool
	)
	update := &cobra.Command{
		Use:   "update <id>",
		Args:  cobra.ExactArgs(1),
		Short: "Update a group",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}
			var input academics.UpdateGroup
			if cmd.Flags().Changed("grado") {
				input.GradeID = &updateGradeID
			}
			if cmd.Flags().Changed("name") {
				input.Name = &updateName
			}
			if cmd.Flags().Changed("capacity") {
				input.Capacity = &updateCapacity
			}
			if cmd.Flags().Changed("maestro") {
				input.TeacherID = &updateTeacherID
			}
			if cmd.Flags().Changed("active") {
				input.Active = &updateActive
			}
			group, err := app.Groups.Update(cmd.Context(), id, input)
			if err != nil {
				return err
			}
			return printJSON(group)
		},
	}
	update.Flags().IntVar(&updateGradeID, "grado", 0, "new grade id")
	update.Flags().StringVar(&updateName, "name", "", "new name")
	update.Flags().IntVar(&updateCapacity, "capacity", 0, "new maximum capacity")
	update.Flags().IntVar(&updateTeacherID, "maestro", 0, "assigned teacher id")
	update.Flags().BoolVar(&updateActive, "active", true, "active flag")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Args:  cobra.ExactArgs(1),
		Short: "Delete a group",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}
			return app.Groups.Delete(cmd.Context(), id)
		},
	})
	return cmd
}

func subjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "materias",
		Short: "Manage subjects",
	}
	routed(cmd, "/materias")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects, err := app.Subjects.List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(subjects)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Args:  cobra.ExactArgs(1),
		Short: "Show one subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}
			subject, err := app.Subjects.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(subject)
		},
	})

	var create academics.CreateSubject
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, err := app.Subjects.Create(cmd.Context(), create)
			if err != nil {
				return err
			}
			return printJSON(subject)
		},
	}
	createCmd.Flags().StringVar(&create.Name, "name", "", "subject name")
	createCmd.Flags().StringVar(&create.Code, "code", "", "subject code")
	createCmd.Flags().StringVar(&create.Description, "description", "", "description")
	createCmd.Flags().StringVar(&create.Color, "color", "", "display color")
	cmd.AddCommand(createCmd)

	var (
		updateName        string
		updateCode        string
		updateDescription string
		updateColor       string
		updateActive      bool
	)
	update := &cobra.Command{
		Use:   "update <id>",
		Args:  cobra.ExactArgs(1),
		Short: "Update a subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}
			var input academics.UpdateSubject
			if cmd.Flags().Changed("name") {
				input.Name = &updateName
			}
			if cmd.Flags().Changed("code") {
				input.Code = &updateCode
			}
			if cmd.Flags().Changed("description") {
				input.Description = &updateDescription
			}
			if cmd.Flags().Changed("color") {
				input.Color = &updateColor
			}
			if cmd.Flags().Changed("active") {
				input.Active = &updateActive
			}
			subject, err := app.Subjects.Update(cmd.Context(), id, input)
			if err != nil {
				return err
			}
			return printJSON(subject)
		},
	}
	update.Flags().StringVar(&updateName, "name", "", "new name")
	update.Flags().StringVar(&updateCode, "code", "", "new code")
	update.Flags().StringVar(&updateDescription, "description", "", "new description")
	update.Flags().StringVar(&updateColor, "color", "", "new display color")
	update.Flags().BoolVar(&updateActive, "active", true, "active flag")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Args:  cobra.ExactArgs(1),
		Short: "Delete a subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}
			return app.Subjects.Delete(cmd.Context(), id)
		},
	})
	return cmd
}
