package commands

import (
	"github.com/spf13/cobra"

	"github.com/chrom13/schoolmanager-web/students"
)

func studentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alumnos",
		Short: "Manage students",
	}
	routed(cmd, "/alumnos")

	var listGroupID int
	list := &cobra.Command{
		Use:   "list",
		Short: "List students, optionally for one group",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("grupo") {
				result, err := app.Students.ListByGroup(cmd.Context(), listGroupID)
				if err != nil {
					return err
				}
				return printJSON(result)
			}
			result, err := app.Students.List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
	list.Flags().IntVar(&listGroupID, "grupo", 0, "filter by group id")
	cmd.AddCommand(list)

	var query string
	search := &cobra.Command{
		Use:   "search",
		Short: "Search students by text",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Students.Search(cmd.Context(), query)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
	search.Flags().StringVarP(&query, "query", "q", "", "search text")
	_ = search.MarkFlagRequired("query")
	cmd.AddCommand(search)

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Args:  cobra.ExactArgs(1),
		Short: "Show one student",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}
			student, err := app.Students.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(student)
		},
	})

	var create students.CreateStudent
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Enroll a student",
		RunE: func(cmd *cobra.Command, args []string) error {
			student, err := app.Students.Create(cmd.Context(), create)
			if err != nil {
				return err
			}
			return printJSON(student)
		},
	}
	createCmd.Flags().StringVar(&create.Name, "name", "", "first name")
	createCmd.Flags().StringVar(&create.ApellidoPaterno, "apellido-paterno", "", "paternal surname")
	createCmd.Flags().StringVar(&create.ApellidoMaterno, "apellido-materno", "", "maternal surname")
	createCmd.Flags().StringVar(&create.CURP, "curp", "", "CURP")
	createCmd.Flags().StringVar(&create.BirthDate, "birth-date", "", "birth date (YYYY-MM-DD)")
	cmd.AddCommand(createCmd)

	var (
		updateGroupID   int
		updateName      string
		updatePaterno   string
		updateMaterno   string
		updateCURP      string
		updateBirthDate string
		updateActive    bool
	)
	update := &cobra.Command{
		Use:   "update <id>",
		Args:  cobra.ExactArgs(1),
		Short: "Update a student",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}
			var input students.UpdateStudent
			if cmd.Flags().Changed("grupo") {
				input.GroupID = &updateGroupID
			}
			if cmd.Flags().Changed("name") {
				input.Name = &updateName
			}
			if cmd.Flags().Changed("apellido-paterno") {
				input.ApellidoPaterno = &updatePaterno
			}
			if cmd.Flags().Changed("apellido-materno") {
				input.ApellidoMaterno = &updateMaterno
			}
			if cmd.Flags().Changed("curp") {
				input.CURP = &updateCURP
			}
			if cmd.Flags().Changed("birth-date") {
				input.BirthDate = &updateBirthDate
			}
			if cmd.Flags().Changed("active") {
				input.Active = &updateActive
			}
			student, err := app.Students.Update(cmd.Context(), id, input)
			if err != nil {
				return err
			}
			return printJSON(student)
		},
	}
	update.Flags().IntVar(&updateGroupID, "grupo", 0, "new group id")
	update.Flags().StringVar(&updateName, "name", "", "new first name")
	update.Flags().StringVar(&updatePaterno, "apellido-paterno", "", "new paternal surname")
	update.Flags().StringVar(&updateMaterno, "apellido-materno", "", "new maternal surname")
	update.Flags().StringVar(&updateCURP, "curp", "", "new CURP")
	update.Flags().StringVar(&updateBirthDate, "birth-date", "", "new birth date (YYYY-MM-DD)")
	update.Flags().BoolVar(&updateActive, "active", true, "active flag")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Args:  cobra.ExactArgs(1),
		Short: "Remove a student",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}
			return app.Students.Delete(cmd.Context(), id)
		},
	})
	return cmd
}

func guardiansCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "padres",
		Short: "Manage guardians and their student links",
	}
	routed(cmd, "/alumnos")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List guardians",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Guardians.List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	})

	var query string
	search := &cobra.Command{
		Use:   "search",
		Short: "Search guardians by text",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Guardians.Search(cmd.Context(), query)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
	search.Flags().StringVarP(&query, "query", "q", "", "search text")
	_ = search.MarkFlagRequired("query")
	cmd.AddCommand(search)

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Args:  cobra.ExactArgs(1),
		Short: "Show one guardian",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}
			guardian, err := app.Guardians.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(guardian)
		},
	})

	var create students.CreateGuardian
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a guardian",
		RunE: func(cmd *cobra.Command, args []string) error {
			guardian, err := app.Guardians.Create(cmd.Context(), create)
			if err != nil {
				return err
			}
			return printJSON(guardian)
		},
	}
	createCmd.Flags().StringVar(&create.FullName, "name", "", "full name")
	createCmd.Flags().StringVarP(&create.Email, "email", "e", "", "email")
	createCmd.Flags().StringVar(&create.Telefono, "phone", "", "phone")
	createCmd.Flags().StringVar(&create.RFC, "rfc", "", "tax id")
	cmd.AddCommand(createCmd)

	var (
		updateFullName string
		updateEmail    string
		updatePhone    string
		updateRFC      string
		updateRegimen  string
		updateUsoCFDI  string
		updatePostal   string
		updateActive   bool
	)
	update := &cobra.Command{
		Use:   "update <id>",
		Args:  cobra.ExactArgs(1),
		Short: "Update a guardian",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}
			var input students.UpdateGuardian
			if cmd.Flags().Changed("name") {
				input.FullName = &updateFullName
			}
			if cmd.Flags().Changed("email") {
				input.Email = &updateEmail
			}
			if cmd.Flags().Changed("phone") {
				input.Telefono = &updatePhone
			}
			if cmd.Flags().Changed("rfc") {
				input.RFC = &updateRFC
			}
			if cmd.Flags().Changed("regimen-fiscal") {
				input.RegimenFiscal = &updateRegimen
			}
			if cmd.Flags().Changed("uso-cfdi") {
				input.UsoCFDI = &updateUsoCFDI
			}
			if cmd.Flags().Changed("postal-code") {
				input.CodigoPostal = &updatePostal
			}
			if cmd.Flags().Changed("active") {
				input.Active = &updateActive
			}
			guardian, err := app.Guardians.Update(cmd.Context(), id, input)
			if err != nil {
				return err
			}
			return printJSON(guardian)
		},
	}
	update.Flags().StringVar(&updateFullName, "name", "", "new full name")
	update.Flags().StringVarP(&updateEmail, "email", "e", "", "new email")
	update.Flags().StringVar(&updatePhone, "phone", "", "new phone")
	update.Flags().StringVar(&updateRFC, "rfc", "", "new tax id")
	update.Flags().StringVar(&updateRegimen, "regimen-fiscal", "", "new tax regime")
	update.Flags().StringVar(&updateUsoCFDI, "uso-cfdi", "", "new CFDI use")
	update.Flags().StringVar(&updatePostal, "postal-code", "", "new postal code")
	update.Flags().BoolVar(&updateActive, "active", true, "active flag")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "alumnos <id>",
		Args:  cobra.ExactArgs(1),
		Short: "List the students linked to a guardian",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}
			result, err := app.Guardians.StudentsOf(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	})

	var (
		linkGuardian int
		linkStudent  int
		pivot        students.LinkData
		relationship string
	)
	link := &cobra.Command{
		Use:   "link",
		Short: "Link a guardian to a student",
		RunE: func(cmd *cobra.Command, args []string) error {
			pivot.Relationship = students.Relationship(relationship)
			return app.Guardians.Link(cmd.Context(), linkGuardian, linkStudent, pivot)
		},
	}
	link.Flags().IntVar(&linkGuardian, "padre", 0, "guardian id")
	link.Flags().IntVar(&linkStudent, "alumno", 0, "student id")
	link.Flags().StringVar(&relationship, "parentesco", "", "padre|madre|tutor|abuelo|otro")
	link.Flags().BoolVar(&pivot.ResponsablePagos, "responsable-pagos", false, "responsible for payments")
	link.Flags().BoolVar(&pivot.ContactoEmergencia, "contacto-emergencia", false, "emergency contact")
	cmd.AddCommand(link)

	var (
		relinkGuardian int
		relinkStudent  int
		relinkPivot    students.LinkData
		relinkRelation string
	)
	updateLink := &cobra.Command{
		Use:   "update-link",
		Short: "Rewrite the relationship data of an existing link",
		RunE: func(cmd *cobra.Command, args []string) error {
			relinkPivot.Relationship = students.Relationship(relinkRelation)
			return app.Guardians.UpdateLink(cmd.Context(), relinkGuardian, relinkStudent, relinkPivot)
		},
	}
	updateLink.Flags().IntVar(&relinkGuardian, "padre", 0, "guardian id")
	updateLink.Flags().IntVar(&relinkStudent, "alumno", 0, "student id")
	updateLink.Flags().StringVar(&relinkRelation, "parentesco", "", "padre|madre|tutor|abuelo|otro")
	updateLink.Flags().BoolVar(&relinkPivot.ResponsablePagos, "responsable-pagos", false, "responsible for payments")
	updateLink.Flags().BoolVar(&relinkPivot.ContactoEmergencia, "contacto-emergencia", false, "emergency contact")
	cmd.AddCommand(updateLink)

	var (
		unlinkGuardian int
		unlinkStudent  int
	)
	unlink := &cobra.Command{
		Use:   "unlink",
		Short: "Unlink a guardian from a student",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Guardians.Unlink(cmd.Context(), unlinkGuardian, unlinkStudent)
		},
	}
	unlink.Flags().IntVar(&unlinkGuardian, "padre", 0, "guardian id")
	unlink.Flags().IntVar(&unlinkStudent, "alumno", 0, "student id")
	cmd.AddCommand(unlink)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Args:  cobra.ExactArgs(1),
		Short: "Delete a guardian",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}
			return app.Guardians.Delete(cmd.Context(), id)
		},
	})
	return cmd
}
